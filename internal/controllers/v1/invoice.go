package v1

import (
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterInvoiceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetInvoices)
	r.POST("", co.CreateInvoice)

	r.OPTIONS("/:id", httputil.OptionsGet)
	r.GET("/:id", co.GetInvoice)

	r.OPTIONS("/:id/payments", httputil.Options(http.MethodPost))
	r.POST("/:id/payments", co.CreateInvoicePayment)
}

func (co Controller) RegisterInvoicePaymentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", httputil.Options(http.MethodDelete))
	r.DELETE("/:id", co.DeleteInvoicePayment)
}

type InvoiceQueryFilter struct {
	ledger.InvoiceFilter
	ledger.Page
}

// @Summary		Get invoices
// @Description	Returns a page of invoices ordered by due date
// @Tags			Invoices
// @Produce		json
// @Success		200				{object}	Response[ledger.InvoicePage]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			status			query		string	false	"OPEN, PARTIAL or PAID"
// @Param			overdue			query		bool	false	"Only unpaid invoices due before today"
// @Param			offset			query		int		false	"The offset of the first invoice returned. Defaults to 0."
// @Param			limit			query		int		false	"Maximum number of invoices to return. Defaults to 50."
// @Router			/v1/organizations/{organizationId}/invoices [get]
func (co Controller) GetInvoices(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var query InvoiceQueryFilter
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	page, err := co.Ledger.ListInvoices(requestContext(c), uri.OrganizationID.UUID, query.InvoiceFilter, query.Page)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, page)
}

// @Summary		Create invoice
// @Tags			Invoices
// @Produce		json
// @Success		201				{object}	Response[models.Invoice]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string				true	"ID formatted as string"
// @Param			invoice			body		ledger.InvoiceInput	true	"Invoice"
// @Router			/v1/organizations/{organizationId}/invoices [post]
func (co Controller) CreateInvoice(c *gin.Context) {
	createResource(c, co.Ledger.CreateInvoice)
}

// @Summary		Get invoice
// @Tags			Invoices
// @Produce		json
// @Success		200				{object}	Response[models.Invoice]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/invoices/{id} [get]
func (co Controller) GetInvoice(c *gin.Context) {
	getResource(c, co.Ledger.GetInvoice)
}

// @Summary		Record invoice payment
// @Description	Records a (partial) payment and updates the settlement status of the invoice
// @Tags			Invoices
// @Produce		json
// @Success		201				{object}	Response[models.Invoice]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string						true	"ID formatted as string"
// @Param			id				path		string						true	"ID formatted as string"
// @Param			payment			body		ledger.InvoicePaymentInput	true	"Payment"
// @Router			/v1/organizations/{organizationId}/invoices/{id}/payments [post]
func (co Controller) CreateInvoicePayment(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var input ledger.InvoicePaymentInput
	if err := httputil.BindData(c, &input); err != nil {
		respondError(c, err)
		return
	}

	invoice, err := co.Ledger.RecordInvoicePayment(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, invoice)
}

// @Summary		Delete invoice payment
// @Description	Deletes a payment and returns the invoice with its updated settlement status
// @Tags			Invoices
// @Produce		json
// @Success		200				{object}	Response[models.Invoice]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID of the payment"
// @Router			/v1/organizations/{organizationId}/invoice-payments/{id} [delete]
func (co Controller) DeleteInvoicePayment(c *gin.Context) {
	getResource(c, co.Ledger.DeleteInvoicePayment)
}
