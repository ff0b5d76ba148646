package authenticator

import (
	"context"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

func (c Claims) str(key string) string {
	v, _ := c[key].(string)
	return v
}

// Subject returns the stable user identifier
func (c Claims) Subject() string { return c.str("sub") }

// Email returns the lowercased email claim, or "" when absent
func (c Claims) Email() string {
	return lower(c.str("email"))
}

// DisplayName prefers nickname, then name, then email, then sub
func (c Claims) DisplayName() string {
	for _, key := range []string{"nickname", "name", "email", "sub"} {
		if v := c.str(key); v != "" {
			return v
		}
	}
	return ""
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
