package session

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/ucsb-cs156/crudapi/pkg/auth"
	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *SessionService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unable to hash password: %s", err.Error())
	}

	users, err := jwt.ParseUsers([]string{
		"alice:ADMIN:" + string(hash),
		"bob:USER:" + string(hash),
	})
	if err != nil {
		t.Fatalf("unable to parse users: %s", err.Error())
	}
	return NewSessionService(jwt.NewAuthority([]byte("test-secret"), time.Hour), users)
}

func TestLogin(t *testing.T) {
	ss := newTestService(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "valid", body: `{"username":"alice","password":"hunter2"}`, wantCode: http.StatusOK},
		{name: "wrong-password", body: `{"username":"alice","password":"nope"}`, wantCode: http.StatusUnauthorized},
		{name: "unknown-user", body: `{"username":"mallory","password":"hunter2"}`, wantCode: http.StatusUnauthorized},
		{name: "missing-password", body: `{"username":"alice"}`, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{"username":`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			ss.Login(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, but got: %d", tt.wantCode, rec.Code)
			}
			if tt.wantCode == http.StatusUnauthorized && !strings.Contains(rec.Body.String(), `"title":"UNAUTHORIZED"`) {
				t.Fatalf("unexpected unauthorized body: %s", rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var resp LoginResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unable to decode login response: %s", err.Error())
			}
			claims, err := ss.authority.Validate(resp.Token)
			if err != nil {
				t.Fatalf("issued token does not validate: %s", err.Error())
			}
			if claims.Name != "alice" || !claims.HasRole(jwt.USER) || !claims.HasRole(jwt.ADMIN) {
				t.Fatalf("unexpected claims: %+v", claims)
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	ss := newTestService(t)
	token, _, err := ss.authority.Issue("bob", jwt.USER)
	if err != nil {
		t.Fatalf("unable to issue token: %s", err.Error())
	}

	h := auth.RequireRole(ss.authority, jwt.USER)(ss.CurrentUser)

	req := httptest.NewRequest(http.MethodGet, "/api/currentUser", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, but got: %d", rec.Code)
	}
	var user CurrentUser
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("unable to decode current user: %s", err.Error())
	}
	if user.Name != "bob" || !slices.Equal(user.Roles, []jwt.Role{jwt.USER}) {
		t.Fatalf("unexpected current user: %+v", user)
	}

	rec = httptest.NewRecorder()
	ss.CurrentUser(rec, httptest.NewRequest(http.MethodGet, "/api/currentUser", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without claims, but got: %d", rec.Code)
	}
}
