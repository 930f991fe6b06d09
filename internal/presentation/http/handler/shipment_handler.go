package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/request"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/response"
)

// ShipmentHandler handles the encomienda workflow
type ShipmentHandler struct {
	shipmentService *service.ShipmentService
}

// NewShipmentHandler creates a new shipment handler
func NewShipmentHandler(shipmentService *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

func shipmentInput(req *request.ShipmentRequest) *service.ShipmentInput {
	return &service.ShipmentInput{
		ClientID:      req.ClientID,
		TripID:        req.TripID,
		OriginID:      req.OriginID,
		DestinationID: req.DestinationID,
		Envelope:      req.Envelope,
		EnvelopeCount: req.EnvelopeCount,
		EnvelopeRate:  entity.Amount(req.EnvelopeRate),
		Package:       req.Package,
		PackageCount:  req.PackageCount,
		PackageRate:   entity.Amount(req.PackageRate),
		Sender:        req.Sender,
		TaxID:         req.TaxID,
		Contact:       req.Contact,
		Description:   req.Description,
	}
}

func shipmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid shipment id")
		return 0, false
	}
	return id, true
}

// FormData loads the collections the shipment screen joins
// @Summary Shipment form data
// @Tags shipments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /shipments/form-data [get]
func (h *ShipmentHandler) FormData(c *gin.Context) {
	data, err := h.shipmentService.FormData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shipment form data", data)
}

// List returns all shipments
// @Summary List shipments
// @Tags shipments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /shipments [get]
func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.shipmentService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shipments retrieved", shipments)
}

// Create books a shipment and returns the refreshed collection
// @Summary Create shipment
// @Tags shipments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ShipmentRequest true "Shipment data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /shipments [post]
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req request.ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shipments, err := h.shipmentService.Create(c.Request.Context(), shipmentInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Shipment created", shipments)
}

// Update replaces a shipment and returns the refreshed collection
// @Summary Update shipment
// @Tags shipments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body request.ShipmentRequest true "Shipment data"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /shipments/{id} [put]
func (h *ShipmentHandler) Update(c *gin.Context) {
	id, ok := shipmentID(c)
	if !ok {
		return
	}

	var req request.ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shipments, err := h.shipmentService.Update(c.Request.Context(), id, shipmentInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shipment updated", shipments)
}

// Delete removes a shipment and returns the refreshed collection
// @Summary Delete shipment
// @Tags shipments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} response.APIResponse
// @Router /shipments/{id} [delete]
func (h *ShipmentHandler) Delete(c *gin.Context) {
	id, ok := shipmentID(c)
	if !ok {
		return
	}

	shipments, err := h.shipmentService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shipment deleted", shipments)
}

// Preview returns the joined voucher data without rendering the PDF
// @Summary Voucher preview
// @Tags shipments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} response.APIResponse
// @Router /shipments/{id}/voucher [get]
func (h *ShipmentHandler) Preview(c *gin.Context) {
	id, ok := shipmentID(c)
	if !ok {
		return
	}

	data, err := h.shipmentService.Preview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Voucher preview", data)
}

// VoucherPDF streams the printable voucher
// @Summary Voucher PDF
// @Tags shipments
// @Security BearerAuth
// @Produce application/pdf
// @Param id path int true "Shipment ID"
// @Success 200 {file} binary
// @Router /shipments/{id}/voucher.pdf [get]
func (h *ShipmentHandler) VoucherPDF(c *gin.Context) {
	id, ok := shipmentID(c)
	if !ok {
		return
	}

	pdf, err := h.shipmentService.VoucherPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.VoucherFilename(id)+`"`)
	c.Data(200, "application/pdf", pdf)
}
