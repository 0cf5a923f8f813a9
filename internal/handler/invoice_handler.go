package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/service"
	"github.com/courtesjuan/OakTownTechnologyServer/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("", h.CreateInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
	}
}

// ListInvoices returns every invoice header joined with the client name
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Success      200  {array}   service.InvoiceSummary
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice returns one invoice header with its line items attached
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  service.InvoiceDetail
// @Failure      404  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Message("Invoice not found"))
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, response.Message("Invoice not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice creates an invoice header with its line items in a transaction
// @Summary      Create invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SaveInvoiceRequest  true  "Invoice payload"
// @Success      200      {object}  response.CreatedInvoiceBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req service.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	result, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.CreatedInvoice("Invoice created", result.ID, result.InvoiceNumber))
}

// UpdateInvoice rewrites the header and replaces the full line-item set
// @Summary      Update invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Invoice ID"
// @Param        payload  body      service.SaveInvoiceRequest  true  "Invoice payload"
// @Success      200      {object}  response.AffectedBody
// @Failure      404      {object}  response.MessageBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Message("Invoice not found"))
		return
	}

	var req service.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	rows, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, response.Message("Invoice not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Affected("Invoice updated", rows))
}

// DeleteInvoice removes the line items, then the header
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  response.AffectedBody
// @Failure      404  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Message("Invoice not found"))
		return
	}

	rows, err := h.invoiceService.DeleteInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, response.Message("Invoice not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Affected("Invoice deleted", rows))
}

// pathID parses the :id segment. A non-numeric id cannot name an existing
// record, so callers treat the false case as not found.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
