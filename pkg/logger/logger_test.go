package logger

import "testing"

func TestInitLevels(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"DEBUG":   "debug",
		" warn ":  "warn",
		"warning": "warn",
		"error":   "error",
		"fatal":   "fatal",
		"":        "info",
		"bogus":   "info",
	}
	for in, want := range cases {
		Init(in)
		if got := LevelString(); got != want {
			t.Fatalf("Init(%q): got level %q want %q", in, got, want)
		}
	}
	// restore default for other tests
	Init("")
}

func TestShouldLogRespectsLevel(t *testing.T) {
	Init("warn")
	defer Init("")

	if shouldLog(LevelDebug) || shouldLog(LevelInfo) {
		t.Fatal("debug/info should be suppressed at warn level")
	}
	if !shouldLog(LevelWarn) || !shouldLog(LevelError) {
		t.Fatal("warn/error should pass at warn level")
	}
}
