package jwt

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Name  string
	Roles []Role
	hash  []byte
}

// Users is the set of accounts allowed to log in.
type Users struct {
	users map[string]User
	dummy []byte
}

// ParseUsers reads entries of the form name:ROLE[+ROLE...]:bcrypt-hash.
func ParseUsers(entries []string) (*Users, error) {
	users := &Users{
		users: make(map[string]User, len(entries)),
	}
	maxCost := bcrypt.DefaultCost

	for _, entry := range entries {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid user entry: expected name:ROLE:hash")
		}

		roles := make([]Role, 0, 2)
		for name := range strings.SplitSeq(parts[1], "+") {
			role, err := ParseRole(name)
			if err != nil {
				return nil, fmt.Errorf("invalid user entry for %s: %w", parts[0], err)
			}
			roles = append(roles, role)
		}

		cost, err := bcrypt.Cost([]byte(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid password hash for %s (single-quote AUTH_USERS in .env files): %w", parts[0], err)
		}
		maxCost = max(maxCost, cost)

		users.users[parts[0]] = User{
			Name:  parts[0],
			Roles: roles,
			hash:  []byte(parts[2]),
		}
	}

	// unknown names are checked against a hash at least as expensive as any real one
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-password"), maxCost)
	if err != nil {
		return nil, fmt.Errorf("could not prepare user store: %w", err)
	}
	users.dummy = dummy

	return users, nil
}

func (u *Users) Authenticate(name, password string) (User, error) {
	user, ok := u.users[name]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(u.dummy, []byte(password))
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.hash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hash), nil
}
