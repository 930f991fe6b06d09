package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/request"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles the in-memory invoice draft workflow
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft id")
		return uuid.Nil, false
	}
	return id, true
}

func itemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return 0, false
	}
	return index, true
}

// Create starts an empty draft
// @Summary New invoice draft
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /invoices/drafts [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	response.Created(c, "Invoice draft created", h.invoiceService.NewDraft())
}

// Get returns a draft with its running total
// @Summary Get invoice draft
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/drafts/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	draft, err := h.invoiceService.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice draft", draft)
}

// SetHeader updates the header block
// @Summary Update draft header
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Router /invoices/drafts/{id}/header [put]
func (h *InvoiceHandler) SetHeader(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req request.InvoiceHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	draft, err := h.invoiceService.SetHeader(id, &service.HeaderInput{
		Number: req.Number,
		Date:   req.Date,
		Terms:  req.Terms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft header updated", draft)
}

// SetClient sets the client block by hand
// @Summary Set draft client
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Router /invoices/drafts/{id}/client [put]
func (h *InvoiceHandler) SetClient(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req request.InvoiceClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	draft, err := h.invoiceService.SetClient(id, entity.ClientSnapshot{RUC: req.RUC, Name: req.Name})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft client updated", draft)
}

// PickClient fills the client block from a backend client record
// @Summary Pick draft client
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Router /invoices/drafts/{id}/client/pick [post]
func (h *InvoiceHandler) PickClient(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req request.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	draft, err := h.invoiceService.PickClient(c.Request.Context(), id, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft client updated", draft)
}

// AddItem appends a hand-typed line item
// @Summary Add draft item
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Router /invoices/drafts/{id}/items [post]
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req request.InvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	draft, err := h.invoiceService.AddItem(id, entity.LineItem{
		Code:        req.Code,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       entity.Amount(req.Price),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line item added", draft)
}

// PickShipment appends a line item from a shipment record
// @Summary Pick shipment as item
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Router /invoices/drafts/{id}/items/pick-shipment [post]
func (h *InvoiceHandler) PickShipment(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req request.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	draft, err := h.invoiceService.PickShipment(c.Request.Context(), id, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line item added", draft)
}

// UpdateItemQuantity edits a line's quantity
// @Summary Update item quantity
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Item index"
// @Router /invoices/drafts/{id}/items/{index} [put]
func (h *InvoiceHandler) UpdateItemQuantity(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	var req request.InvoiceQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	draft, err := h.invoiceService.UpdateItemQuantity(id, index, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line item updated", draft)
}

// RemoveItem drops a line item
// @Summary Remove draft item
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Item index"
// @Router /invoices/drafts/{id}/items/{index} [delete]
func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	draft, err := h.invoiceService.RemoveItem(id, index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line item removed", draft)
}

// Generate marks the draft generated; nothing is persisted
// @Summary Generate invoice
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Router /invoices/drafts/{id}/generate [post]
func (h *InvoiceHandler) Generate(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	draft, err := h.invoiceService.Generate(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice generated", draft)
}

// Discard drops a draft
// @Summary Discard draft
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Router /invoices/drafts/{id} [delete]
func (h *InvoiceHandler) Discard(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	h.invoiceService.Discard(id)
	response.NoContent(c)
}
