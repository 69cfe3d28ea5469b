package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", "Internal server error while fetching projects.", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var in domain.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		if isMissingField(err) {
			c.JSON(http.StatusBadRequest, errorResp{Message: "Missing required fields (title or short description)."})
			return
		}
		h.fail(c, "create", "Internal server error while adding project.", err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, errorResp{Message: "Missing required fields (title or short description)."})
			return
		}
		h.fail(c, "create", "Internal server error while adding project.", err)
		return
	}

	h.logger.Info("project created", zap.String("project_id", id))
	c.JSON(http.StatusCreated, createResp{Message: "Project created successfully", ProjectID: id})
}

func (h *Handler) update(c *gin.Context) {
	var in domain.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		h.fail(c, "update", "Internal server error while updating project.", err)
		return
	}

	err := h.svc.Update(c.Request.Context(), in)
	switch {
	case domain.IsValidation(err) && domain.ValidationField(err) == "_id":
		c.JSON(http.StatusBadRequest, errorResp{Message: "Project ID is required for updating."})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, errorResp{Message: "Title and short description cannot be empty.", Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResp{Message: "Project not found."})
	case err != nil:
		h.fail(c, "update", "Internal server error while updating project.", err)
	default:
		h.logger.Info("project updated", zap.String("project_id", in.ID))
		c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
	}
}

func (h *Handler) delete(c *gin.Context) {
	var in domain.DeleteInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		h.fail(c, "delete", "Internal server error while deleting project.", err)
		return
	}

	err := h.svc.Delete(c.Request.Context(), in.ID)
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, errorResp{Message: "Project ID is required for deletion."})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResp{Message: "Project not found."})
	case err != nil:
		h.fail(c, "delete", "Internal server error while deleting project.", err)
	default:
		h.logger.Info("project deleted", zap.String("project_id", in.ID))
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	}
}

// fail writes a 500 with the underlying error attached. A missing database
// configuration is reported as such rather than as a storage failure.
func (h *Handler) fail(c *gin.Context, op, message string, err error) {
	if errors.Is(err, domain.ErrNotConfigured) {
		h.logger.Error("projects: MONGODB_URI is not set", zap.String("op", op))
		c.JSON(http.StatusInternalServerError, errorResp{Message: "Server configuration error.", Error: err.Error()})
		return
	}
	h.logger.Error("projects: request failed", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, errorResp{Message: message, Error: err.Error()})
}

// isMissingField reports whether a bind error came from a required-field
// check or an empty body, as opposed to malformed JSON.
func isMissingField(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve) || errors.Is(err, io.EOF)
}
