package httpclient

import (
	"fmt"
	"net/http"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey uses API key authentication (header or query parameter).
	AuthAPIKey
	// AuthJWT signs a short-lived bearer token for every request.
	AuthJWT
	// AuthCustom uses a custom authentication function.
	AuthCustom
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// In specifies where to place the API key: "header" (default) or "query" (AuthAPIKey).
	In string
	// Name is the header or query parameter name (AuthAPIKey). Defaults to "X-API-Key".
	Name string
	// JWT configures token signing (AuthJWT).
	JWT *JWTConfig
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
}

// JWTConfig configures the tokens signed by AuthJWT.
type JWTConfig struct {
	// Secret is the HMAC signing key.
	Secret string
	// Method is HS256 (default), HS384 or HS512.
	Method string
	Issuer  string
	Subject string
	// Audience is the "aud" claim (optional).
	Audience []string
	// TTL is the token lifetime. Defaults to 5m.
	TTL time.Duration
	// Claims are added to the registered claims.
	Claims map[string]any
	// now is replaced in tests.
	now func() time.Time
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent via header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: "X-API-Key"}
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: headerName}
}

// APIKeyAuthQuery creates an API key auth config sent via query parameter.
func APIKeyAuthQuery(key, paramName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "query", Name: paramName}
}

// JWTAuth creates an auth config signing a fresh bearer token per request.
func JWTAuth(cfg JWTConfig) *AuthConfig {
	return &AuthConfig{Type: AuthJWT, JWT: &cfg}
}

// CustomAuth creates a custom auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) error {
	if a == nil {
		return nil
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		if a.In == "query" {
			q := req.URL.Query()
			q.Set(name, a.Key)
			req.URL.RawQuery = q.Encode()
		} else {
			req.Header.Set(name, a.Key)
		}
	case AuthJWT:
		token, err := a.JWT.sign()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
	return nil
}

// sign returns a token valid from now for TTL.
func (c *JWTConfig) sign() (string, error) {
	if c == nil || c.Secret == "" {
		return "", fmt.Errorf("httpclient: jwt secret is required")
	}
	method, err := c.signingMethod()
	if err != nil {
		return "", err
	}

	now := time.Now()
	if c.now != nil {
		now = c.now()
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	claims := gojwt.MapClaims{}
	for k, v := range c.Claims {
		claims[k] = v
	}
	claims["iat"] = gojwt.NewNumericDate(now)
	claims["exp"] = gojwt.NewNumericDate(now.Add(ttl))
	if c.Issuer != "" {
		claims["iss"] = c.Issuer
	}
	if c.Subject != "" {
		claims["sub"] = c.Subject
	}
	if len(c.Audience) > 0 {
		claims["aud"] = c.Audience
	}

	token, err := gojwt.NewWithClaims(method, claims).SignedString([]byte(c.Secret))
	if err != nil {
		return "", fmt.Errorf("httpclient: sign jwt: %w", err)
	}
	return token, nil
}

// signingMethod returns the golang-jwt SigningMethod instance.
func (c *JWTConfig) signingMethod() (gojwt.SigningMethod, error) {
	switch c.Method {
	case "", "HS256":
		return gojwt.SigningMethodHS256, nil
	case "HS384":
		return gojwt.SigningMethodHS384, nil
	case "HS512":
		return gojwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("httpclient: unsupported jwt signing method %q", c.Method)
	}
}
