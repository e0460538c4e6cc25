package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"
	"medical-scheduling-api/internal/usecase"
	"medical-scheduling-api/pkg/requestid"
	"medical-scheduling-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// writeError is the only place usecase failures become HTTP statuses.
// Unclassified errors are logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, log *logrus.Logger, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		response.NotFound(w, err.Error())
	default:
		id, _ := requestid.FromContext(r.Context())
		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Errorf("Failed to %s: %+v", op, err)
		response.InternalServerError(w, "")
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// parseListQuery reads ?page=&limit=&status=. Absent values are left zero.
func parseListQuery(r *http.Request) (dto.ListQuery, error) {
	var query dto.ListQuery
	values := r.URL.Query()

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("invalid page %q", raw)
		}
		query.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("invalid limit %q", raw)
		}
		query.Limit = limit
	}

	if raw := values.Get("status"); raw != "" {
		status, err := strconv.ParseBool(raw)
		if err != nil {
			return query, fmt.Errorf("invalid status %q", raw)
		}
		query.Status = &status
	}

	return query, nil
}

// listMeta reports the page and limit actually applied by the repositories.
func listMeta(query dto.ListQuery, total int64) *response.Meta {
	filter := entity.ListFilter{Page: query.Page, Limit: query.Limit}.Normalize()
	return response.NewMeta(filter.Page, filter.Limit, total)
}
