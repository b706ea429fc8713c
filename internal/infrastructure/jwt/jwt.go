package jwt

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthorityAdmin = "ADMIN"
	AuthorityUser  = "USER"

	clientID         = "eduassist"
	clientRolePrefix = "eduassist-"
)

type Service struct {
	jwtSecret string
}

func New(jwtSecret string) *Service { return &Service{jwtSecret: jwtSecret} }

type (
	Access struct {
		Roles []string `json:"roles"`
	}
	Claims struct {
		PreferredUsername string            `json:"preferred_username,omitempty"`
		Email             string            `json:"email,omitempty"`
		GivenName         string            `json:"given_name,omitempty"`
		FamilyName        string            `json:"family_name,omitempty"`
		RealmAccess       *Access           `json:"realm_access,omitempty"`
		ResourceAccess    map[string]Access `json:"resource_access,omitempty"`
		jwt.RegisteredClaims
	}
)

// Authorities maps identity-provider roles to the route authorities.
// Realm roles win; client roles are only consulted when the realm carries none.
func (c *Claims) Authorities() []string {
	if c.RealmAccess != nil && c.RealmAccess.Roles != nil {
		out := make([]string, 0, len(c.RealmAccess.Roles))
		for _, r := range c.RealmAccess.Roles {
			switch {
			case r == "admin":
				out = append(out, AuthorityAdmin)
			case r == "user":
				out = append(out, AuthorityUser)
			case strings.HasPrefix(r, clientRolePrefix):
				out = append(out, strings.ToUpper(strings.TrimPrefix(r, clientRolePrefix)))
			}
		}
		return out
	}

	client, ok := c.ResourceAccess[clientID]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(client.Roles))
	for _, r := range client.Roles {
		out = append(out, strings.ToUpper(r))
	}
	return out
}

// Sign issues an HS256 token. The service itself never hands tokens out;
// this exists for tooling and tests that need a verifiable token.
func (s *Service) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
