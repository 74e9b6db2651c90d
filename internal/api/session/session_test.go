package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

func newTestManager() *Manager {
	return NewManager("cookie-secret", 15*time.Minute, 7*24*time.Hour)
}

// attachAndReplay writes the session cookies on one response, then builds a
// follow-up request carrying them, the way a browser would.
func attachAndReplay(t *testing.T, m *Manager) echo.Context {
	t.Helper()
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	if err := m.Attach(c, "access-jwt", "refresh-jwt"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	return e.NewContext(next, httptest.NewRecorder())
}

func TestManager_AttachSetsCookieAttributes(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	if err := newTestManager().Attach(c, "access-jwt", "refresh-jwt"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(cookies))
	}

	byName := map[string]*http.Cookie{}
	for _, cookie := range cookies {
		byName[cookie.Name] = cookie
	}

	access, ok := byName[AccessCookieName]
	if !ok {
		t.Fatalf("access cookie missing")
	}
	refresh, ok := byName[RefreshCookieName]
	if !ok {
		t.Fatalf("refresh cookie missing")
	}

	for _, cookie := range []*http.Cookie{access, refresh} {
		if !cookie.HttpOnly {
			t.Fatalf("%s must be HttpOnly", cookie.Name)
		}
		if !cookie.Secure {
			t.Fatalf("%s must be Secure", cookie.Name)
		}
		if cookie.SameSite != http.SameSiteNoneMode {
			t.Fatalf("%s must be SameSite=None", cookie.Name)
		}
		if cookie.Path != "/" {
			t.Fatalf("%s must have Path=/", cookie.Name)
		}
		if cookie.Value == "" || strings.Contains(cookie.Value, "access-jwt") || strings.Contains(cookie.Value, "refresh-jwt") {
			t.Fatalf("%s must carry a signed envelope, got %q", cookie.Name, cookie.Value)
		}
	}
	if access.MaxAge != 900 {
		t.Fatalf("access Max-Age: expected 900, got %d", access.MaxAge)
	}
	if refresh.MaxAge != 604800 {
		t.Fatalf("refresh Max-Age: expected 604800, got %d", refresh.MaxAge)
	}
}

func TestManager_RoundTrip(t *testing.T) {
	m := newTestManager()
	c := attachAndReplay(t, m)

	access, ok := m.ReadAccess(c)
	if !ok || access != "access-jwt" {
		t.Fatalf("access round trip failed: %q %v", access, ok)
	}
	refresh, ok := m.ReadRefresh(c)
	if !ok || refresh != "refresh-jwt" {
		t.Fatalf("refresh round trip failed: %q %v", refresh, ok)
	}
}

func TestManager_MissingCookieIsAbsent(t *testing.T) {
	m := newTestManager()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, ok := m.ReadAccess(c); ok {
		t.Fatalf("expected absent access cookie")
	}
	if _, ok := m.ReadRefresh(c); ok {
		t.Fatalf("expected absent refresh cookie")
	}
}

func TestManager_TamperedCookieIsAbsent(t *testing.T) {
	m := newTestManager()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: "dGFtcGVyZWQ="})
	c := e.NewContext(req, httptest.NewRecorder())

	if _, ok := m.ReadAccess(c); ok {
		t.Fatalf("expected tampered cookie to read as absent")
	}
}

func TestManager_ForeignSignatureIsAbsent(t *testing.T) {
	// A cookie signed under a different secret must not verify.
	other := NewManager("other-secret", 15*time.Minute, 7*24*time.Hour)
	c := attachAndReplay(t, other)

	m := newTestManager()
	if _, ok := m.ReadAccess(c); ok {
		t.Fatalf("expected foreign-signed cookie to read as absent")
	}
}

// envelopeAt builds a cookie envelope bearing the given issue time, byte for
// byte what the codec would have produced then: base64("date|value|mac") with
// the MAC computed over "name|date|value" under the signing key.
func envelopeAt(t *testing.T, secret, name, token string, issuedAt time.Time) string {
	t.Helper()

	serialized, err := securecookie.GobEncoder{}.Serialize(token)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	value := base64.URLEncoding.EncodeToString(serialized)
	date := issuedAt.Unix()

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%d|%s", name, date, value)

	body := fmt.Sprintf("%d|%s|%s", date, value, mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(body))
}

func refreshContextWithEnvelope(e *echo.Echo, envelope string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: envelope})
	return e.NewContext(req, httptest.NewRecorder())
}

// A refresh cookie must stay readable for the whole configured refresh TTL,
// including TTLs well past a month, and become absent once older than it.
func TestManager_EnvelopeLifetimeFollowsRefreshTTL(t *testing.T) {
	e := echo.New()
	m := NewManager("cookie-secret", 15*time.Minute, 365*24*time.Hour)

	aged := envelopeAt(t, "cookie-secret", RefreshCookieName, "refresh-jwt", time.Now().Add(-31*24*time.Hour))
	token, ok := m.ReadRefresh(refreshContextWithEnvelope(e, aged))
	if !ok || token != "refresh-jwt" {
		t.Fatalf("31-day-old envelope should still read under a 1y TTL: %q %v", token, ok)
	}

	stale := envelopeAt(t, "cookie-secret", RefreshCookieName, "refresh-jwt", time.Now().Add(-366*24*time.Hour))
	if _, ok := m.ReadRefresh(refreshContextWithEnvelope(e, stale)); ok {
		t.Fatalf("envelope older than the refresh TTL should read as absent")
	}
}

func TestManager_EnvelopeOlderThanDefaultTTLIsAbsent(t *testing.T) {
	e := echo.New()
	m := newTestManager() // 7d refresh TTL

	stale := envelopeAt(t, "cookie-secret", RefreshCookieName, "refresh-jwt", time.Now().Add(-8*24*time.Hour))
	if _, ok := m.ReadRefresh(refreshContextWithEnvelope(e, stale)); ok {
		t.Fatalf("8-day-old envelope should read as absent under a 7d TTL")
	}
}

func TestManager_ClearIsIdempotent(t *testing.T) {
	m := newTestManager()
	e := echo.New()

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		m.Clear(c)

		cookies := rec.Result().Cookies()
		if len(cookies) != 2 {
			t.Fatalf("expected 2 expired cookies, got %d", len(cookies))
		}
		for _, cookie := range cookies {
			if cookie.MaxAge >= 0 {
				t.Fatalf("%s should be expired, Max-Age %d", cookie.Name, cookie.MaxAge)
			}
			if cookie.Value != "" {
				t.Fatalf("%s should be emptied, got %q", cookie.Name, cookie.Value)
			}
		}
	}
}
