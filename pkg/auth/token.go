package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "sustainassess"

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 session tokens and manages the session cookie.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	cookie string
	secure bool
	now    func() time.Time
}

// NewTokens creates Tokens from a finalized Config.
func NewTokens(cfg *Config) *Tokens {
	return &Tokens{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTLDuration(),
		cookie: cfg.CookieName,
		secure: cfg.SecureCookie,
		now:    time.Now,
	}
}

// Issue signs a token for p that expires after the configured TTL.
func (t *Tokens) Issue(p Principal) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: p.Name,
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies a token and returns its Principal.
func (t *Tokens) Parse(raw string) (Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(
		raw,
		&c,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return t.secret, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || c.Subject == "" {
		return Principal{}, ErrInvalidToken
	}

	return Principal{Subject: c.Subject, Name: c.Name, Role: c.Role}, nil
}

// SetCookie issues a token for p and writes it as an HttpOnly session cookie.
func (t *Tokens) SetCookie(w http.ResponseWriter, p Principal) error {
	token, expires, err := t.Issue(p)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     t.cookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie expires the session cookie.
func (t *Tokens) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (t *Tokens) fromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(t.cookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	if h := r.Header.Get("Authorization"); len(h) > 7 && h[:7] == "Bearer " {
		return h[7:], nil
	}
	return "", errors.New("no session token")
}
