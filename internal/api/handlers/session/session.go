package session

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ucsb-cs156/crudapi/pkg/auth"
	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
	"github.com/ucsb-cs156/crudapi/pkg/bslog"
	"github.com/ucsb-cs156/crudapi/pkg/rest/middleware"
	"github.com/ucsb-cs156/crudapi/pkg/rest/request"
	"github.com/ucsb-cs156/crudapi/pkg/rest/response"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CurrentUser struct {
	Name  string     `json:"name"`
	Roles []jwt.Role `json:"roles"`
}

type SessionService struct {
	authority *jwt.Authority
	users     *jwt.Users
}

func NewSessionService(authority *jwt.Authority, users *jwt.Users) *SessionService {
	return &SessionService{
		authority: authority,
		users:     users,
	}
}

func (ss *SessionService) Login(w http.ResponseWriter, r *http.Request) {
	logger := bslog.With(slog.String("request_id", middleware.RequestID(r.Context())))

	var creds LoginRequest
	if err := request.JSONDECODE(r.Body, &creds); err != nil {
		logger.Error("could not decode request body", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInvalidInput, "invalid request format")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		response.Err(w, response.ErrInvalidInput, "username and password are required")
		return
	}

	user, err := ss.users.Authenticate(creds.Username, creds.Password)
	if err != nil {
		logger.Warn("login failed", slog.String("user", creds.Username), slog.String("reason", err.Error()))
		if errors.Is(err, jwt.ErrInvalidCredentials) {
			response.Err(w, response.ErrUnauthorized, "invalid username or password")
			return
		}
		response.Err(w, response.ErrInternalError, "unable to authenticate")
		return
	}

	token, expiresAt, err := ss.authority.Issue(user.Name, user.Roles...)
	if err != nil {
		logger.Error("unable to issue token", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInternalError, "unable to issue token")
		return
	}

	logger.Info("user logged in", slog.String("user", user.Name))
	response.JSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// CurrentUser echoes the caller's identity. It must sit behind auth.RequireRole.
func (ss *SessionService) CurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		resp := jwt.Errors[jwt.ErrForbidden]
		response.JSON(w, resp.Code, resp)
		return
	}

	response.JSON(w, http.StatusOK, CurrentUser{Name: claims.Name, Roles: claims.Roles})
}
