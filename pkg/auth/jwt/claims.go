package jwt

import (
	"fmt"
	"slices"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	USER  Role = "USER"
	ADMIN Role = "ADMIN"
)

// roles granted on top of the ones named in a token
var impliedRoles = map[Role][]Role{
	ADMIN: {USER},
}

func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "ROLE_")))
	switch role {
	case USER, ADMIN:
		return role, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

type UserClaims struct {
	Name  string `json:"name"`
	Roles []Role `json:"roles"`
	jwt.RegisteredClaims
}

func (c *UserClaims) HasRole(role Role) bool {
	for _, held := range c.Roles {
		if held == role || slices.Contains(impliedRoles[held], role) {
			return true
		}
	}
	return false
}
