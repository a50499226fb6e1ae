package token

import (
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/jobly/internal/config"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

func newManager(secret string) *Manager {
	return NewManager(config.AuthConfig{SecretKey: secret, TokenTTL: time.Hour})
}

func TestIssueAndParse(t *testing.T) {
	m := newManager("secret")

	raw, err := m.Issue(model.User{Username: "u1", IsAdmin: true})
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "u1" || !claims.IsAdmin || claims.Subject != "u1" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Error("iat and exp must be set")
	}
}

func TestParseRejects(t *testing.T) {
	m := newManager("secret")
	good, _ := m.Issue(model.User{Username: "u1"})

	expired := newManager("secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue(model.User{Username: "u1"})

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	noUser, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))

	tests := []struct {
		name string
		raw  string
		m    *Manager
	}{
		{"garbage", "not-a-token", m},
		{"wrong secret", good, newManager("other")},
		{"expired", old, m},
		{"alg none", none, m},
		{"no username", noUser, m},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.m.Parse(tt.raw); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}
