package crud

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ucsb-cs156/crudapi/internal/model"
	"github.com/ucsb-cs156/crudapi/pkg/bslog"
	"github.com/ucsb-cs156/crudapi/pkg/persistence"
	"github.com/ucsb-cs156/crudapi/pkg/rest/middleware"
	"github.com/ucsb-cs156/crudapi/pkg/rest/request"
	"github.com/ucsb-cs156/crudapi/pkg/rest/response"
)

// KeyParser turns the raw key query parameter into a store key.
type KeyParser[K comparable] func(raw string) (K, error)

// Resource serves list, get, create, update and delete for one entity kind.
// Create reads the record from `param` tagged query parameters, update from a
// JSON body whose key, if any, is ignored in favour of the query parameter.
type Resource[K comparable, T any] struct {
	kind       string
	keyParam   string
	parseKey   KeyParser[K]
	updateFrom func(dst *T, src T)
	repo       persistence.Repository[K, T]
}

func NewResource[K comparable, T any](
	kind, keyParam string,
	parseKey KeyParser[K],
	updateFrom func(dst *T, src T),
	repo persistence.Repository[K, T],
) *Resource[K, T] {
	return &Resource[K, T]{
		kind:       kind,
		keyParam:   keyParam,
		parseKey:   parseKey,
		updateFrom: updateFrom,
		repo:       repo,
	}
}

func (res *Resource[K, T]) List(w http.ResponseWriter, r *http.Request) {
	logger := res.logger(r)

	records, err := res.repo.FindAll(r.Context())
	if err != nil {
		logger.Error("unable to list records", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInternalError, fmt.Sprintf("unable to fetch %s records from storage", res.kind))
		return
	}
	if records == nil {
		records = make([]T, 0)
	}

	if err = response.JSON(w, http.StatusOK, records); err != nil {
		logger.Error("could not write response to client", slog.String("reason", err.Error()))
	}
}

func (res *Resource[K, T]) Get(w http.ResponseWriter, r *http.Request) {
	logger := res.logger(r)

	key, ok := res.key(w, r, logger)
	if !ok {
		return
	}

	record, ok := res.lookup(w, r, logger, key)
	if !ok {
		return
	}

	if err := response.JSON(w, http.StatusOK, record); err != nil {
		logger.Error("could not write response to client", slog.String("reason", err.Error()))
	}
}

func (res *Resource[K, T]) Create(w http.ResponseWriter, r *http.Request) {
	logger := res.logger(r)

	var record T
	if err := request.MarshallParams(r.URL.Query(), &record); err != nil {
		logger.Error("unable to parse request parameters", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInvalidInput, err.Error())
		return
	}

	if err := res.repo.Save(r.Context(), &record); err != nil {
		logger.Error("unable to create record", slog.String("reason", err.Error()))
		if errors.Is(err, persistence.ErrMissingKey) {
			response.Err(w, response.ErrInvalidInput, fmt.Sprintf("%s must not be empty", res.keyParam))
			return
		}
		response.Err(w, response.ErrInternalError, fmt.Sprintf("unable to store %s", res.kind))
		return
	}

	logger.Info("record created", slog.String("kind", res.kind))
	if err := response.JSON(w, http.StatusOK, record); err != nil {
		logger.Error("could not write response to client", slog.String("reason", err.Error()))
	}
}

func (res *Resource[K, T]) Update(w http.ResponseWriter, r *http.Request) {
	logger := res.logger(r)

	key, ok := res.key(w, r, logger)
	if !ok {
		return
	}

	var incoming T
	if err := request.JSONDECODE(r.Body, &incoming); err != nil {
		logger.Error("could not decode request body", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInvalidInput, "invalid request format")
		return
	}

	record, ok := res.lookup(w, r, logger, key)
	if !ok {
		return
	}

	res.updateFrom(&record, incoming)
	if err := res.repo.Save(r.Context(), &record); err != nil {
		logger.Error("unable to update record", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInternalError, fmt.Sprintf("unable to update %s", res.kind))
		return
	}

	logger.Info("record updated", slog.String("kind", res.kind), slog.Any("key", key))
	if err := response.JSON(w, http.StatusOK, record); err != nil {
		logger.Error("could not write response to client", slog.String("reason", err.Error()))
	}
}

func (res *Resource[K, T]) Delete(w http.ResponseWriter, r *http.Request) {
	logger := res.logger(r)

	key, ok := res.key(w, r, logger)
	if !ok {
		return
	}

	record, ok := res.lookup(w, r, logger, key)
	if !ok {
		return
	}

	if err := res.repo.Delete(r.Context(), record); err != nil {
		logger.Error("unable to delete record", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInternalError, fmt.Sprintf("unable to delete %s", res.kind))
		return
	}

	logger.Info("record deleted", slog.String("kind", res.kind), slog.Any("key", key))
	if err := response.Msg(w, http.StatusOK, "%s with id %v deleted", res.kind, key); err != nil {
		logger.Error("could not write response to client", slog.String("reason", err.Error()))
	}
}

func (res *Resource[K, T]) logger(r *http.Request) *slog.Logger {
	return bslog.With(
		slog.String("request_id", middleware.RequestID(r.Context())),
		slog.String("kind", res.kind),
	)
}

// key writes a 400 and reports false when the key parameter is absent or malformed.
func (res *Resource[K, T]) key(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (K, bool) {
	query := r.URL.Query()
	if !query.Has(res.keyParam) {
		logger.Error("skipping request due to insufficient input parameters", slog.String("reason", "missing "+res.keyParam))
		response.Err(w, response.ErrInvalidInput, "missing "+res.keyParam)
		var zero K
		return zero, false
	}

	key, err := res.parseKey(query.Get(res.keyParam))
	if err != nil {
		logger.Error("unable to parse key", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInvalidInput, fmt.Sprintf("invalid %s: %s", res.keyParam, query.Get(res.keyParam)))
		return key, false
	}
	return key, true
}

// lookup writes the not-found or storage failure and reports false on a miss.
func (res *Resource[K, T]) lookup(w http.ResponseWriter, r *http.Request, logger *slog.Logger, key K) (T, bool) {
	record, found, err := res.repo.FindByKey(r.Context(), key)
	if err != nil {
		logger.Error("unable to read record", slog.String("reason", err.Error()))
		response.Err(w, response.ErrInternalError, fmt.Sprintf("unable to fetch %s from storage", res.kind))
		return record, false
	}

	if !found {
		notFound := model.NewEntityNotFoundError(res.kind, key)
		logger.Info("record not found", slog.String("reason", notFound.Error()))
		response.Exc(w, http.StatusNotFound, model.EntityNotFoundType, notFound.Error())
		return record, false
	}
	return record, true
}
