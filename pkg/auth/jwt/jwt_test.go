package jwt

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestHasRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []Role
		check Role
		want  bool
	}{
		{name: "user-has-user", roles: []Role{USER}, check: USER, want: true},
		{name: "user-lacks-admin", roles: []Role{USER}, check: ADMIN, want: false},
		{name: "admin-implies-user", roles: []Role{ADMIN}, check: USER, want: true},
		{name: "admin-has-admin", roles: []Role{ADMIN}, check: ADMIN, want: true},
		{name: "no-roles", roles: nil, check: USER, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &UserClaims{Roles: tt.roles}
			if got := claims.HasRole(tt.check); got != tt.want {
				t.Fatalf("HasRole(%s) = %v, want %v", tt.check, got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{"USER": USER, "admin": ADMIN, "ROLE_ADMIN": ADMIN, " user ": USER} {
		got, err := ParseRole(in)
		if err != nil || got != want {
			t.Errorf("ParseRole(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseRole("ROOT"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestAuthorityRoundTrip(t *testing.T) {
	authority := NewAuthority([]byte("s3cr3t"), time.Hour)

	token, expiresAt, err := authority.Issue("alice", ADMIN)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected expiry in the future, but got: %s", expiresAt)
	}

	claims, err := authority.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if claims.Name != "alice" || !claims.HasRole(ADMIN) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthorityRejects(t *testing.T) {
	authority := NewAuthority([]byte("s3cr3t"), time.Hour)
	other := NewAuthority([]byte("other"), time.Hour)
	hs256 := NewAuthority([]byte("s3cr3t"), time.Hour, WithSigningMethod(jwt.SigningMethodHS256))

	expired := NewAuthority([]byte("s3cr3t"), time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	forged, _, _ := other.Issue("mallory", ADMIN)
	old, _, _ := expired.Issue("bob", USER)
	wrongAlg, _, _ := hs256.Issue("eve", ADMIN)

	for name, token := range map[string]string{
		"wrong-secret":    forged,
		"expired":         old,
		"wrong-algorithm": wrongAlg,
		"garbage":         "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := authority.Validate(token); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestUsers(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unable to hash: %s", err.Error())
	}

	users, err := ParseUsers([]string{
		"admin:ADMIN+USER:" + string(hash),
		"reader:USER:" + string(hash),
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	admin, err := users.Authenticate("admin", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if len(admin.Roles) != 2 || admin.Roles[0] != ADMIN {
		t.Fatalf("unexpected roles: %v", admin.Roles)
	}

	if _, err := users.Authenticate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected %v, but got: %v", ErrInvalidCredentials, err)
	}
	if _, err := users.Authenticate("nobody", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected %v, but got: %v", ErrInvalidCredentials, err)
	}
}

func TestUnknownUserCostsAsMuchAsKnown(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
	}{
		{name: "cheap-configured-hash", cost: bcrypt.MinCost, wantCost: bcrypt.DefaultCost},
		{name: "expensive-configured-hash", cost: bcrypt.DefaultCost + 1, wantCost: bcrypt.DefaultCost + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), tt.cost)
			if err != nil {
				t.Fatalf("unable to hash: %s", err.Error())
			}

			users, err := ParseUsers([]string{"admin:ADMIN:" + string(hash)})
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}

			cost, err := bcrypt.Cost(users.dummy)
			if err != nil {
				t.Fatalf("dummy is not a bcrypt hash: %s", err.Error())
			}
			if cost != tt.wantCost {
				t.Fatalf("expected dummy cost %d, but got: %d", tt.wantCost, cost)
			}
		})
	}
}

func TestParseUsersInvalid(t *testing.T) {
	for _, entry := range []string{
		"admin",
		"admin:ADMIN",
		"admin:ROOT:$2a$04$abcdefghijklmnopqrstuv",
		"admin:ADMIN:plaintext",
	} {
		if _, err := ParseUsers([]string{entry}); err == nil {
			t.Errorf("expected error for entry %q", entry)
		}
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")) != nil {
		t.Fatal("hash does not match password")
	}
}
