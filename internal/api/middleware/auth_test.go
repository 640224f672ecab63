package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/auth"
)

func issueToken(t *testing.T, codec *auth.Codec) string {
	t.Helper()
	token, err := codec.Issue("alice", 7, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestBearer_ValidToken(t *testing.T) {
	e := echo.New()
	codec := auth.NewCodec("secret")
	resolver := auth.NewResolver(codec, auth.BearerToken)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, codec))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Bearer(resolver)(func(c echo.Context) error {
		called = true
		if c.Get(CtxUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxUserID) != int64(7) {
			t.Fatalf("user id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestBearer_Unauthenticated(t *testing.T) {
	codec := auth.NewCodec("secret")
	resolver := auth.NewResolver(codec, auth.BearerToken)

	cases := map[string]func(*http.Request){
		"missing header": func(r *http.Request) {},
		"wrong scheme":   func(r *http.Request) { r.Header.Set("Authorization", "Token abc") },
		"garbage token":  func(r *http.Request) { r.Header.Set("Authorization", "Bearer garbage") },
		"wrong secret": func(r *http.Request) {
			other := auth.NewCodec("other")
			token, _ := other.Issue("alice", 7, time.Hour)
			r.Header.Set("Authorization", "Bearer "+token)
		},
	}

	for name, prepare := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		prepare(req)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Bearer(resolver)(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		err := handler(c)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 HTTPError, got %v", name, err)
		}
		if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
			t.Fatalf("%s: missing WWW-Authenticate hint", name)
		}
	}
}

func TestCookie_ValidToken(t *testing.T) {
	e := echo.New()
	codec := auth.NewCodec("secret")
	resolver := auth.NewResolver(codec, auth.CookieToken)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: issueToken(t, codec)})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Cookie(resolver, "/auth/login")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestCookie_RedirectsInsteadOfRaising(t *testing.T) {
	codec := auth.NewCodec("secret")
	resolver := auth.NewResolver(codec, auth.CookieToken)

	expired := auth.NewCodec("secret")
	expiredToken, err := expired.Issue("alice", 7, -time.Minute)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	cases := map[string]func(*http.Request){
		"no cookie":      func(r *http.Request) {},
		"garbage cookie": func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"}) },
		"expired token":  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: expiredToken}) },
	}

	for name, prepare := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		prepare(req)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Cookie(resolver, "/auth/login")(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		if err := handler(c); err != nil {
			t.Fatalf("%s: cookie strategy must not raise, got %v", name, err)
		}
		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", name, rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/auth/login" {
			t.Fatalf("%s: expected redirect to /auth/login, got %q", name, loc)
		}
	}
}
