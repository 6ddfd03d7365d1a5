package sessions

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CookieName is the session cookie gating admin operations.
const CookieName = "user"

// TTL is the fixed session lifetime set at login.
const TTL = 24 * time.Hour

// User is the session payload carried in the cookie as URL-encoded JSON.
// The value is unsigned; presence of the cookie is the whole authentication
// contract (see CurrentUser for the one place the payload is decoded).
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

var (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession = errors.New("no session cookie")
	// ErrCorrupt is returned when the cookie is present but its value cannot
	// be decoded.
	ErrCorrupt = errors.New("corrupt session cookie")
)

// cookieValue scans the raw Cookie header by splitting on ';' and trimming,
// so a garbled value (e.g. invalid percent-encoding) is still found. The
// stdlib cookie parser is deliberately not used here: the guard must see the
// cookie whether or not its value is well formed.
func cookieValue(r *http.Request) (string, bool) {
	for _, part := range strings.Split(r.Header.Get("Cookie"), ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, CookieName+"=") {
			return strings.TrimPrefix(part, CookieName+"="), true
		}
	}
	return "", false
}

// Present reports whether the request carries a session cookie. Presence
// alone implies authenticated for all gating decisions; the value is not
// validated here.
func Present(r *http.Request) bool {
	_, ok := cookieValue(r)
	return ok
}

// CurrentUser decodes the session payload. Unlike Present it does inspect the
// value, failing with ErrCorrupt when the cookie cannot be decoded.
func CurrentUser(r *http.Request) (*User, error) {
	v, ok := cookieValue(r)
	if !ok {
		return nil, ErrNoSession
	}
	decoded, err := url.QueryUnescape(v)
	if err != nil {
		return nil, ErrCorrupt
	}
	var u User
	if err := json.Unmarshal([]byte(decoded), &u); err != nil {
		return nil, ErrCorrupt
	}
	return &u, nil
}

// NewCookie issues the session cookie for a freshly authenticated user.
func NewCookie(u User) (*http.Cookie, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(string(b)),
		Path:     "/",
		Expires:  time.Now().Add(TTL),
		MaxAge:   int(TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ExpiredCookie overwrites the session cookie with an already-expired one.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
