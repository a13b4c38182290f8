package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-platform/internal/application"
	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/pkg/response"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Param input body form.FormInput true "Form with its questions"
// @Success 200 {object} form.FormAggregate
// @Failure 400 {object} response.ErrorResponse "Invalid input or store failure"
// @Failure 500 {object} response.ErrorResponse "Database connection not available"
// @Router / [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.FormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBind(c, err)
		return
	}

	out, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListForms godoc
// @Summary List forms, newest first
// @Tags forms
// @Produce json
// @Success 200 {array} form.FormAggregate
// @Failure 500 {object} response.ErrorResponse
// @Router / [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get a form
// @Tags forms
// @Produce json
// @Param formId path int true "Form ID"
// @Success 200 {object} form.FormAggregate
// @Failure 400 {object} response.ErrorResponse "Invalid form ID"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /{formId} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		return
	}

	out, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ReplaceForm godoc
// @Summary Replace a form and all of its questions
// @Tags forms
// @Accept json
// @Produce json
// @Param formId path int true "Form ID"
// @Param input body form.FormInput true "New form content"
// @Success 200 {object} form.FormAggregate
// @Failure 400 {object} response.ErrorResponse "Invalid input or store failure"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Database connection not available"
// @Router /{formId} [put]
func (h *FormHandler) ReplaceForm(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		return
	}
	var input form.FormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBind(c, err)
		return
	}

	out, err := h.service.Replace(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteForm godoc
// @Summary Delete a form
// @Tags forms
// @Produce json
// @Param formId path int true "Form ID"
// @Success 200 {object} response.MessageResponse "Form deleted successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid form ID"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /{formId} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted successfully"})
}

func formID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("formId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form ID", Kind: "validation_error"})
		return 0, false
	}
	return uint(id), true
}
