package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/response"
)

// LookupHandler serves the selector modals
type LookupHandler struct {
	lookupService *service.LookupService
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookupService *service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// Options lists the selectable rows for a resource
// @Summary Lookup options
// @Tags lookups
// @Security BearerAuth
// @Produce json
// @Param resource path string true "Resource name"
// @Param q query string false "Substring filter"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lookups/{resource} [get]
func (h *LookupHandler) Options(c *gin.Context) {
	options, err := h.lookupService.Options(c.Request.Context(), c.Param("resource"), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Lookup options", options)
}
