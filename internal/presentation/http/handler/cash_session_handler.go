package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/request"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/response"
)

// CashSessionHandler handles the register open/close workflow
type CashSessionHandler struct {
	cashService *service.CashSessionService
}

// NewCashSessionHandler creates a new cash session handler
func NewCashSessionHandler(cashService *service.CashSessionService) *CashSessionHandler {
	return &CashSessionHandler{cashService: cashService}
}

// Current returns the currently open register, or no data when none is open
// @Summary Current open register
// @Tags registers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /registers/current [get]
func (h *CashSessionHandler) Current(c *gin.Context) {
	session, err := h.cashService.CurrentOpen(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if session == nil {
		response.OK(c, "No open cash register", gin.H{"open": false})
		return
	}
	response.OK(c, "Open cash register", gin.H{"open": true, "session": session})
}

// Open opens a register
// @Summary Open register
// @Tags registers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.OpenRegisterRequest true "Opening data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /registers/open [post]
func (h *CashSessionHandler) Open(c *gin.Context) {
	var req request.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.cashService.Open(c.Request.Context(), &service.OpenRegisterInput{
		Name:          req.Name,
		OpeningAmount: entity.Amount(req.OpeningAmount),
		EmployeeID:    req.EmployeeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Cash register opened", session)
}

// Close closes the open register and returns the closing report
// @Summary Close register
// @Tags registers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CloseRegisterRequest true "Closing data"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /registers/close [post]
func (h *CashSessionHandler) Close(c *gin.Context) {
	var req request.CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	report, err := h.cashService.Close(c.Request.Context(), &service.CloseRegisterInput{
		FinalAmount: entity.Amount(req.FinalAmount),
		Withdrawn:   entity.Amount(req.Withdrawn),
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cash register closed", report)
}

// Report rebuilds the report for the most recent closed session
// @Summary Latest closing report
// @Tags registers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /registers/report [get]
func (h *CashSessionHandler) Report(c *gin.Context) {
	report, err := h.cashService.Report(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Closing report", report)
}
