package handlers

import (
	"context"
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"scaffold-service/internal/introspect"
	"scaffold-service/internal/middleware"
	"scaffold-service/internal/models"
	"scaffold-service/internal/scaffold"
	"scaffold-service/internal/service"
)

// CodegenHandler serves the parse and create endpoints of the admin menu.
type CodegenHandler struct {
	svc *service.CodegenService
	log *logrus.Entry
}

// NewCodegenHandler creates a CodegenHandler.
func NewCodegenHandler(svc *service.CodegenService, log *logrus.Entry) *CodegenHandler {
	return &CodegenHandler{svc: svc, log: log}
}

// RegisterRoutes mounts the handler on the menu group.
func (h *CodegenHandler) RegisterRoutes(menu *gin.RouterGroup) {
	menu.POST("/parse", h.Parse)
	menu.POST("/create", h.Create)
}

// Parse godoc
// @Summary Introspect an entity
// @Description Resolve the columns the submitted entity source would map to and the admin route of its module. Nothing is written and the live schema is untouched.
// @Tags codegen
// @Accept  json
// @Produce  json
// @Param   request  body   models.ParseRequest   true  "Entity source, controller source and module name"
// @Success 200 {object} models.ParseResult "Columns and route path"
// @Failure 400 {object} models.APIError "Bad Request (see 'code' in response for specifics like MALFORMED_ENTITY_SOURCE, UNRESOLVED_FILE_NAME, VALIDATION_ERROR)"
// @Failure 422 {object} models.APIError "Entity cannot be introspected (SCHEMA_INTROSPECTION_FAILED)"
// @Failure 500 {object} models.APIError "Internal Server Error (see 'code' in response for specifics like INTERNAL_SERVER_ERROR)"
// @Router /admin/base/sys/menu/parse [post]
func (h *CodegenHandler) Parse(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}

	result, err := h.svc.Parse(c.Request.Context(), req.Entity, req.Controller, req.Module)
	if err != nil {
		h.respondWithCodegenError(c, err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, result)
}

// Create godoc
// @Summary Scaffold a module
// @Description Write the module config (only if absent), the entity and the admin controller below the application base directory.
// @Tags codegen
// @Accept  json
// @Produce  json
// @Param   request  body   models.CreateRequest   true  "Module name, entity source and controller source"
// @Success 201 {object} models.CreateResult "Module scaffolded"
// @Failure 400 {object} models.APIError "Bad Request (see 'code' in response for specifics like UNRESOLVED_FILE_NAME, VALIDATION_ERROR)"
// @Failure 500 {object} models.APIError "Internal Server Error (see 'code' in response for specifics like FILE_SYSTEM_WRITE_FAILED)"
// @Router /admin/base/sys/menu/create [post]
func (h *CodegenHandler) Create(c *gin.Context) {
	var req models.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.respondWithCodegenError(c, err)
		return
	}
	RespondWithSuccess(c, http.StatusCreated, result)
}

func (h *CodegenHandler) respondWithCodegenError(c *gin.Context, err error) {
	log := h.log.WithField("request_id", middleware.RequestID(c)).WithError(err)
	var pathErr *fs.PathError

	switch {
	case errors.Is(err, introspect.ErrMalformedEntitySource):
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeMalformedEntitySource, introspect.ErrMalformedEntitySource.Error(), nil)
	case errors.Is(err, scaffold.ErrUnresolvedFileName):
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeUnresolvedFileName, "Controller source has no import to derive the file name from", nil)
	case errors.Is(err, scaffold.ErrInvalidModuleName):
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid module name", gin.H{"reason": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("Code generation timed out")
		RespondWithError(c, http.StatusGatewayTimeout, models.ErrorCodeRequestTimeout, "Request timed out", nil)
	case errors.Is(err, introspect.ErrSchemaIntrospectionFailed):
		log.Info("Entity introspection failed")
		RespondWithError(c, http.StatusUnprocessableEntity, models.ErrorCodeSchemaIntrospectionFailed, "Failed to introspect entity", gin.H{"reason": err.Error()})
	case errors.As(err, &pathErr):
		log.Error("Failed to write module files")
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeFileSystemWriteFailed, "Failed to write module files", gin.H{"path": pathErr.Path})
	default:
		log.Error("Code generation failed")
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Code generation failed", nil)
	}
}
