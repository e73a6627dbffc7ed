package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/services"
	"hotel-premium-backend/utils"
)

type InvoiceController struct {
	invoices *services.InvoiceService
}

func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoices: invoices}
}

func (ctl *InvoiceController) GetInvoices(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctl.invoices.GetAll())
}

func (ctl *InvoiceController) GetInvoiceByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	invoice, err := ctl.invoices.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

// GetInvoiceView renders the plain-text itemized breakdown.
func (ctl *InvoiceController) GetInvoiceView(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := ctl.invoices.RenderView(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.String(http.StatusOK, view)
}

func (ctl *InvoiceController) GetInvoiceByReservation(c *gin.Context) {
	id, ok := paramID(c, "reservationId")
	if !ok {
		return
	}
	invoice, err := ctl.invoices.GetByReservation(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}
