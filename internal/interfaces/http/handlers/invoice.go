// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/invoice"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// InvoiceHandler handles invoice-related endpoints
type InvoiceHandler struct {
	orderService   *order.Service
	invoiceService *invoice.Service
	pdfService     *pdf.Service
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(orderService *order.Service, invoiceService *invoice.Service, pdfService *pdf.Service) *InvoiceHandler {
	return &InvoiceHandler{
		orderService:   orderService,
		invoiceService: invoiceService,
		pdfService:     pdfService,
	}
}

// GenerateInvoice handles GET /orders/:id/invoice, the plain-text download
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	o, err := h.orderService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	text := h.invoiceService.RenderText(&o)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.txt", o.Number))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// GenerateInvoicePDF handles GET /orders/:id/invoice.pdf
func (h *InvoiceHandler) GenerateInvoicePDF(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	o, err := h.orderService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	pdfBuffer, err := h.pdfService.GenerateInvoice(&o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	// Set headers for PDF download
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", o.Number))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
