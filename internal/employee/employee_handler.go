package employee

import (
	"errors"
	"net/http"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// writeServiceError keeps validation failures as 400 and reports anything else
// with the generic fetch failure message.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var fields employeeerrors.FieldErrors
	if errors.Is(err, employeeerrors.ErrValidationFailure) && errors.As(err, &fields) {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, MsgValidationFailure, fields)
		return
	}

	httpErr := apperror.ToHTTP(err)
	h.logger.Error("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, http.StatusInternalServerError, httpErr.Code, MsgFetchFailed, nil)
}

func (h *Handler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add employee validation failed", zap.Error(err))
		details := apperror.ToHTTP(apperror.MapValidationError(err)).Message
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, MsgValidationFailure, details)
		return
	}

	outcome, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, outcome.Message())
}

func (h *Handler) ReadEmployees(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("http read employees failed", zap.Error(err))
		response.ErrorWithData(c, http.StatusInternalServerError, apperror.ToHTTP(err).Code, MsgFetchFailed, []EmployeeResponse{})
		return
	}

	response.Success(c, http.StatusOK, resp)
}
