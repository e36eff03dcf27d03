package httpclient

import (
	"net/http"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func TestBearerAuth(t *testing.T) {
	auth := BearerAuth("my-token")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("Authorization"); got != "Bearer my-token" {
		t.Errorf("got %q, want %q", got, "Bearer my-token")
	}
}

func TestBasicAuth(t *testing.T) {
	auth := BasicAuth("user", "pass")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	u, p, ok := req.BasicAuth()
	if !ok || u != "user" || p != "pass" {
		t.Errorf("basic auth not set correctly: user=%q pass=%q ok=%v", u, p, ok)
	}
}

func TestAPIKeyAuth_Header(t *testing.T) {
	auth := APIKeyAuth("secret-key")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("X-API-Key"); got != "secret-key" {
		t.Errorf("got %q, want %q", got, "secret-key")
	}
}

func TestAPIKeyAuthHeader_CustomName(t *testing.T) {
	auth := APIKeyAuthHeader("secret-key", "X-Custom-Key")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("X-Custom-Key"); got != "secret-key" {
		t.Errorf("got %q, want %q", got, "secret-key")
	}
}

func TestAPIKeyAuthQuery(t *testing.T) {
	auth := APIKeyAuthQuery("secret-key", "api_key")
	req, _ := http.NewRequest("GET", "http://example.com/path", nil)
	auth.apply(req)
	if got := req.URL.Query().Get("api_key"); got != "secret-key" {
		t.Errorf("got %q, want %q", got, "secret-key")
	}
}

func TestCustomAuth(t *testing.T) {
	auth := CustomAuth(func(req *http.Request) {
		req.Header.Set("X-Custom", "value")
	})
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("X-Custom"); got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}
}

func TestNilAuth(t *testing.T) {
	var auth *AuthConfig
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req) // should not panic
}

func TestAuthNone(t *testing.T) {
	auth := &AuthConfig{Type: AuthNone}
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req) // should not modify request
	if req.Header.Get("Authorization") != "" {
		t.Error("AuthNone should not set Authorization header")
	}
}

func TestJWTAuth(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	auth := JWTAuth(JWTConfig{
		Secret:   "s3cret",
		Issuer:   "apiruntime",
		Subject:  "svc-pets",
		Audience: []string{"pets-api"},
		TTL:      time.Minute,
		Claims:   map[string]any{"scope": "pets:read"},
		now:      func() time.Time { return issued },
	})
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	if err := auth.apply(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok {
		t.Fatalf("expected bearer token, got %q", req.Header.Get("Authorization"))
	}

	claims := gojwt.MapClaims{}
	_, err := gojwt.NewParser(
		gojwt.WithValidMethods([]string{"HS256"}),
		gojwt.WithTimeFunc(func() time.Time { return issued.Add(30 * time.Second) }),
	).ParseWithClaims(raw, claims, func(*gojwt.Token) (any, error) { return []byte("s3cret"), nil })
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if claims["iss"] != "apiruntime" || claims["sub"] != "svc-pets" || claims["scope"] != "pets:read" {
		t.Errorf("unexpected claims: %v", claims)
	}
	exp, _ := claims.GetExpirationTime()
	if !exp.Time.Equal(issued.Add(time.Minute)) {
		t.Errorf("exp = %v, want %v", exp.Time, issued.Add(time.Minute))
	}
}

func TestJWTAuth_SigningMethod(t *testing.T) {
	auth := JWTAuth(JWTConfig{Secret: "s3cret", Method: "HS512"})
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	if err := auth.apply(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
	token, _, err := gojwt.NewParser().ParseUnverified(raw, gojwt.MapClaims{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if token.Method.Alg() != "HS512" {
		t.Errorf("alg = %q, want HS512", token.Method.Alg())
	}
}

func TestJWTAuth_Errors(t *testing.T) {
	for name, cfg := range map[string]JWTConfig{
		"missing secret": {},
		"bad method":     {Secret: "s3cret", Method: "RS256"},
	} {
		t.Run(name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "http://example.com", nil)
			if err := JWTAuth(cfg).apply(req); err == nil {
				t.Error("expected error")
			}
			if req.Header.Get("Authorization") != "" {
				t.Error("Authorization header should not be set on failure")
			}
		})
	}
}
