package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/usecase"
	"medical-scheduling-api/pkg/response"
	"medical-scheduling-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

// CrudRoutes is what the router needs to mount one entity under /api/{Entity}.
type CrudRoutes interface {
	EntityName() string
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdatePartial(w http.ResponseWriter, r *http.Request)
	DeleteLogic(w http.ResponseWriter, r *http.Request)
}

type CrudHandler[C any, P dto.Identifiable, R any] struct {
	usecase   usecase.CrudUsecase[C, P, R]
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewCrudHandler[C any, P dto.Identifiable, R any](
	uc usecase.CrudUsecase[C, P, R],
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *CrudHandler[C, P, R] {
	return &CrudHandler[C, P, R]{
		usecase:   uc,
		validator: validator,
		log:       log,
	}
}

func (h *CrudHandler[C, P, R]) EntityName() string {
	return h.usecase.EntityName()
}

func (h *CrudHandler[C, P, R]) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	items, total, err := h.usecase.List(r.Context(), query)
	if err != nil {
		writeError(w, r, h.log, "list "+h.EntityName(), err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, h.EntityName()+"s retrieved successfully", items, listMeta(query, total))
}

func (h *CrudHandler[C, P, R]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid "+h.EntityName()+" ID")
		return
	}

	item, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, "get "+h.EntityName(), err)
		return
	}

	response.Success(w, http.StatusOK, h.EntityName()+" retrieved successfully", item)
}

func (h *CrudHandler[C, P, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, "create "+h.EntityName(), err)
		return
	}

	response.Success(w, http.StatusCreated, h.EntityName()+" created successfully", item)
}

func (h *CrudHandler[C, P, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid "+h.EntityName()+" ID")
		return
	}

	var req C
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, "update "+h.EntityName(), err)
		return
	}

	response.Success(w, http.StatusOK, h.EntityName()+" updated successfully", item)
}

func (h *CrudHandler[C, P, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid "+h.EntityName()+" ID")
		return
	}

	if err := h.usecase.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, "delete "+h.EntityName(), err)
		return
	}

	response.Success(w, http.StatusOK, h.EntityName()+" deleted successfully", nil)
}

func (h *CrudHandler[C, P, R]) UpdatePartial(w http.ResponseWriter, r *http.Request) {
	var req P
	if !h.decode(w, r, &req) {
		return
	}

	ok, err := h.usecase.UpdatePartial(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, "partially update "+h.EntityName(), err)
		return
	}
	if !ok {
		response.NotFound(w, h.notFoundMessage(req.GetID()))
		return
	}

	response.Success(w, http.StatusOK, h.EntityName()+" updated successfully", nil)
}

func (h *CrudHandler[C, P, R]) DeleteLogic(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteLogicalRequest
	if !h.decode(w, r, &req) {
		return
	}

	ok, err := h.usecase.DeleteLogic(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, "set status of "+h.EntityName(), err)
		return
	}
	if !ok {
		response.NotFound(w, h.notFoundMessage(req.ID))
		return
	}

	verb := "deactivated"
	if *req.Status {
		verb = "activated"
	}
	response.Success(w, http.StatusOK, fmt.Sprintf("%s %s successfully", h.EntityName(), verb), nil)
}

// decode reads and validates the JSON body, writing the 400 itself on failure.
func (h *CrudHandler[C, P, R]) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(dst); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}

	return true
}

func (h *CrudHandler[C, P, R]) notFoundMessage(id int64) string {
	return fmt.Sprintf("%s with ID %d not found", h.EntityName(), id)
}
