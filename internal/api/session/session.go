// Package session maps token lifecycle events onto signed cookies. The
// cookie envelope is HMAC-signed with its own secret, independent of both
// JWT signing secrets, so a client cannot tamper with the cookie value even
// before the token inside it is verified.
package session

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

// Cookie names expected by the storefront.
const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

// Manager attaches, reads and clears the two session cookies.
type Manager struct {
	codec      *securecookie.SecureCookie
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager builds a Manager signing with cookieSecret. TTLs become the
// cookies' Max-Age so the browser drops them when the tokens expire anyway.
func NewManager(cookieSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	codec := securecookie.New([]byte(cookieSecret), nil)
	// The codec stamps each envelope and rejects old ones on decode; its
	// age bound must cover the longest-lived cookie or a refresh cookie
	// outliving the codec default would read as absent while its Max-Age
	// and the JWT inside are both still valid. Token expiry itself is
	// enforced by the JWTs.
	codec.MaxAge(int(refreshTTL.Seconds()))
	return &Manager{codec: codec, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Attach writes both session cookies on the response.
func (m *Manager) Attach(c echo.Context, accessToken, refreshToken string) error {
	if err := m.set(c, AccessCookieName, accessToken, m.accessTTL); err != nil {
		return err
	}
	return m.set(c, RefreshCookieName, refreshToken, m.refreshTTL)
}

// AttachAccess writes only the access cookie, used by the refresh flow where
// the refresh cookie is deliberately left untouched.
func (m *Manager) AttachAccess(c echo.Context, accessToken string) error {
	return m.set(c, AccessCookieName, accessToken, m.accessTTL)
}

// ReadAccess returns the access token, or ok=false when the cookie is
// absent or its signature does not verify. A tampered cookie is
// indistinguishable from a missing one.
func (m *Manager) ReadAccess(c echo.Context) (string, bool) {
	return m.read(c, AccessCookieName)
}

// ReadRefresh returns the refresh token with the same absence semantics.
func (m *Manager) ReadRefresh(c echo.Context) (string, bool) {
	return m.read(c, RefreshCookieName)
}

// Clear expires both cookies. Clearing already-absent cookies is a no-op,
// which makes logout idempotent.
func (m *Manager) Clear(c echo.Context) {
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}

func (m *Manager) set(c echo.Context, name, token string, ttl time.Duration) error {
	encoded, err := m.codec.Encode(name, token)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return nil
}

func (m *Manager) read(c echo.Context, name string) (string, bool) {
	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	var token string
	if err := m.codec.Decode(name, cookie.Value, &token); err != nil {
		return "", false
	}
	return token, true
}
