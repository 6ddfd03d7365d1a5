package sessions

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresent(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.False(t, Present(r))

	r.Header.Set("Cookie", "other=1; user=whatever")
	assert.True(t, Present(r))

	// garbled value still counts as present
	r.Header.Set("Cookie", "user=%")
	assert.True(t, Present(r))
}

func TestCurrentUser_RoundTrip(t *testing.T) {
	c, err := NewCookie(User{ID: 1, Username: "admin", Role: "admin"})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Cookie", c.Name+"="+c.Value)

	u, err := CurrentUser(r)
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "admin", u.Role)
}

func TestCurrentUser_NoSession(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, err := CurrentUser(r)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentUser_CorruptValues(t *testing.T) {
	// invalid percent-encoding
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Cookie", "user=%")
	_, err := CurrentUser(r)
	require.ErrorIs(t, err, ErrCorrupt)

	// decodable but not JSON
	r.Header.Set("Cookie", "user=not-json")
	_, err = CurrentUser(r)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestExpiredCookieClearsSession(t *testing.T) {
	c := ExpiredCookie()
	assert.Equal(t, CookieName, c.Name)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
