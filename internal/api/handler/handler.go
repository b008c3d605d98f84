package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ucsb-cs156/crudapi/internal/api/handlers/crud"
	"github.com/ucsb-cs156/crudapi/internal/api/handlers/session"
	"github.com/ucsb-cs156/crudapi/internal/api/routes"
	"github.com/ucsb-cs156/crudapi/internal/model"
	"github.com/ucsb-cs156/crudapi/internal/repositories"
	"github.com/ucsb-cs156/crudapi/pkg/auth"
	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
	"github.com/ucsb-cs156/crudapi/pkg/rest/middleware"
	"github.com/ucsb-cs156/crudapi/pkg/rest/response"
)

const healthTimeout = 2 * time.Second

// resource is satisfied by every crud.Resource instantiation.
type resource interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type resourceRoutes struct {
	list, get, create, update, remove string
}

type Handler struct {
	mux       *http.ServeMux
	repos     *repositories.Repositories
	authority *jwt.Authority
	metrics   *middleware.Metrics
	logger    *slog.Logger
}

// NewHandler wires every route onto a fresh mux. reg receives the request
// metrics and is exposed on /metrics.
func NewHandler(
	repos *repositories.Repositories,
	authority *jwt.Authority,
	users *jwt.Users,
	reg *prometheus.Registry,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		mux:       http.NewServeMux(),
		repos:     repos,
		authority: authority,
		metrics:   middleware.NewMetrics(reg),
		logger:    logger,
	}

	h.resource(
		crud.NewResource(model.KindBook, "id", crud.Int64Key, (*model.Book).UpdateFrom, repos.Books),
		resourceRoutes{routes.GET_BOOKS, routes.GET_BOOK, routes.POST_BOOK, routes.PUT_BOOK, routes.DELETE_BOOK},
	)
	h.resource(
		crud.NewResource(model.KindDog, "name", crud.StringKey, (*model.Dog).UpdateFrom, repos.Dogs),
		resourceRoutes{routes.GET_DOGS, routes.GET_DOG, routes.POST_DOG, routes.PUT_DOG, routes.DELETE_DOG},
	)
	h.resource(
		crud.NewResource(model.KindRestaurant, "id", crud.Int64Key, (*model.Restaurant).UpdateFrom, repos.Restaurants),
		resourceRoutes{routes.GET_RESTAURANTS, routes.GET_RESTAURANT, routes.POST_RESTAURANT, routes.PUT_RESTAURANT, routes.DELETE_RESTAURANT},
	)

	sessions := session.NewSessionService(authority, users)
	h.handle(routes.POST_AUTH_LOGIN, "", sessions.Login)
	h.handle(routes.GET_CURRENT_USER, jwt.USER, sessions.CurrentUser)

	h.handle(routes.GET_HEALTHZ, "", h.health)
	h.mux.Handle(routes.GET_METRICS, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) resource(res resource, rr resourceRoutes) {
	h.handle(rr.list, jwt.USER, res.List)
	h.handle(rr.get, jwt.USER, res.Get)
	h.handle(rr.create, jwt.ADMIN, res.Create)
	h.handle(rr.update, jwt.ADMIN, res.Update)
	h.handle(rr.remove, jwt.ADMIN, res.Delete)
}

// handle registers fn behind request logging and metrics, and behind a role
// check unless role is empty.
func (h *Handler) handle(pattern string, role jwt.Role, fn http.HandlerFunc) {
	mws := []middleware.MiddlewareFunc{
		middleware.WithIncomingRequestLogging(h.logger),
		h.metrics.WithMetrics(pattern),
	}
	if role != "" {
		mws = append(mws, auth.RequireRole(h.authority, role))
	}
	h.mux.HandleFunc(pattern, middleware.Chain(mws...)(fn))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.repos.Ping(ctx); err != nil {
		h.logger.Error("store is unreachable", slog.String("reason", err.Error()))
		response.Err(w, response.ErrUnavailable, "store is unreachable")
		return
	}
	response.Msg(w, http.StatusOK, "ok")
}
