package handler

import (
	"net/http"

	"medical-scheduling-api/internal/usecase"
	"medical-scheduling-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	log             *logrus.Logger
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, log *logrus.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		log:             log,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.Get(r.Context(), auditLogID)
	if err != nil {
		writeError(w, r, h.log, "get audit log", err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	auditLogs, total, err := h.auditLogUsecase.List(r.Context(), query)
	if err != nil {
		writeError(w, r, h.log, "list audit logs", err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs, listMeta(query, total))
}
