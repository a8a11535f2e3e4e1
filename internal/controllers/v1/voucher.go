package v1

import (
	"net/http"
	"time"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	ez_uuid "github.com/clubledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterVoucherRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetVouchers)
		r.POST("", co.CreateVoucher)
	}

	// Voucher with ID
	{
		r.OPTIONS("/:id", httputil.Options(http.MethodGet, http.MethodPatch, http.MethodDelete))
		r.GET("/:id", co.GetVoucher)
		r.PATCH("/:id", co.UpdateVoucher)
		r.DELETE("/:id", co.DeleteVoucher)

		r.OPTIONS("/:id/reverse", httputil.Options(http.MethodPost))
		r.POST("/:id/reverse", co.ReverseVoucher)

		r.OPTIONS("/:id/attachments", httputil.Options(http.MethodPost))
		r.POST("/:id/attachments", co.CreateAttachment)
	}
}

func (co Controller) RegisterAttachmentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", httputil.Options(http.MethodDelete))
	r.DELETE("/:id", co.DeleteAttachment)
}

// VoucherQueryFilter is the query string of the voucher list.
type VoucherQueryFilter struct {
	Year          *int                 `form:"year" binding:"omitempty,min=1"`
	From          time.Time            `form:"from" time_format:"2006-01-02" time_utc:"1" example:"2024-01-01"`
	Until         time.Time            `form:"until" time_format:"2006-01-02" time_utc:"1" example:"2024-12-31"`
	Type          models.VoucherType   `form:"type"`
	Sphere        models.Sphere        `form:"sphere"`
	PaymentMethod models.PaymentMethod `form:"paymentMethod"`
	Search        string               `form:"search"`
	TagID         ez_uuid.UUID         `form:"tag"`
	EarmarkID     ez_uuid.UUID         `form:"earmark"`
	BudgetID      ez_uuid.UUID         `form:"budget"`
	AccountID     ez_uuid.UUID         `form:"account"`
	ledger.Page
}

func (f VoucherQueryFilter) filter() ledger.VoucherFilter {
	filter := ledger.VoucherFilter{
		Year:          f.Year,
		Type:          f.Type,
		Sphere:        f.Sphere,
		PaymentMethod: f.PaymentMethod,
		Search:        f.Search,
		TagID:         f.TagID.Ptr(),
		EarmarkID:     f.EarmarkID.Ptr(),
		BudgetID:      f.BudgetID.Ptr(),
		AccountID:     f.AccountID.Ptr(),
	}

	if !f.From.IsZero() {
		filter.From = &f.From
	}

	if !f.Until.IsZero() {
		filter.Until = &f.Until
	}

	return filter
}

// @Summary		Get vouchers
// @Description	Returns a page of vouchers ordered by date and number
// @Tags			Vouchers
// @Produce		json
// @Success		200				{object}	Response[ledger.VoucherPage]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			year			query		int		false	"Filter by fiscal year"
// @Param			from			query		string	false	"Vouchers on or after this date (YYYY-MM-DD)"
// @Param			until			query		string	false	"Vouchers on or before this date (YYYY-MM-DD)"
// @Param			type			query		string	false	"Filter by voucher type"
// @Param			sphere			query		string	false	"Filter by tax sphere"
// @Param			paymentMethod	query		string	false	"Filter by payment method"
// @Param			search			query		string	false	"Search in description, counterparty and booking memos"
// @Param			tag				query		string	false	"Vouchers with a booking with this tag"
// @Param			earmark			query		string	false	"Vouchers with a booking with this earmark"
// @Param			budget			query		string	false	"Vouchers with a booking with this budget"
// @Param			account			query		string	false	"Vouchers with a booking on this account"
// @Param			offset			query		int		false	"The offset of the first voucher returned. Defaults to 0."
// @Param			limit			query		int		false	"Maximum number of vouchers to return. Defaults to 50."
// @Router			/v1/organizations/{organizationId}/vouchers [get]
func (co Controller) GetVouchers(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var query VoucherQueryFilter
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	page, err := co.Ledger.ListVouchers(requestContext(c), uri.OrganizationID.UUID, query.filter(), query.Page)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, page)
}

// @Summary		Create voucher
// @Description	Creates a balanced voucher with its bookings and assigns the next number of its fiscal year
// @Tags			Vouchers
// @Produce		json
// @Success		201				{object}	Response[models.Voucher]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Failure		423				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			organizationId	path		string				true	"ID formatted as string"
// @Param			voucher			body		ledger.VoucherInput	true	"Voucher"
// @Router			/v1/organizations/{organizationId}/vouchers [post]
func (co Controller) CreateVoucher(c *gin.Context) {
	createResource(c, co.Ledger.CreateVoucher)
}

// @Summary		Get voucher
// @Tags			Vouchers
// @Produce		json
// @Success		200				{object}	Response[models.Voucher]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/vouchers/{id} [get]
func (co Controller) GetVoucher(c *gin.Context) {
	getResource(c, co.Ledger.GetVoucher)
}

// @Summary		Update voucher
// @Description	Updates a voucher. If lines are sent, they replace all bookings
// @Tags			Vouchers
// @Produce		json
// @Success		200				{object}	Response[models.Voucher]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Failure		423				{object}	httpError
// @Param			organizationId	path		string					true	"ID formatted as string"
// @Param			id				path		string					true	"ID formatted as string"
// @Param			voucher			body		ledger.VoucherUpdate	true	"Voucher"
// @Router			/v1/organizations/{organizationId}/vouchers/{id} [patch]
func (co Controller) UpdateVoucher(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var update ledger.VoucherUpdate
	if err := httputil.BindData(c, &update); err != nil {
		respondError(c, err)
		return
	}

	voucher, err := co.Ledger.UpdateVoucher(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, voucher)
}

// @Summary		Delete voucher
// @Tags			Vouchers
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		423				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/vouchers/{id} [delete]
func (co Controller) DeleteVoucher(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	if err := co.Ledger.DeleteVoucher(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Reverse voucher
// @Description	Creates a voucher with mirrored bookings, dated today, that cancels the voucher
// @Tags			Vouchers
// @Produce		json
// @Success		201				{object}	Response[models.Voucher]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		423				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/vouchers/{id}/reverse [post]
func (co Controller) ReverseVoucher(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	reversal, err := co.Ledger.ReverseVoucher(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, reversal)
}

// @Summary		Attach file
// @Description	Records the metadata of a file stored for the voucher
// @Tags			Vouchers
// @Produce		json
// @Success		201				{object}	Response[models.Attachment]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		423				{object}	httpError
// @Param			organizationId	path		string					true	"ID formatted as string"
// @Param			id				path		string					true	"ID formatted as string"
// @Param			attachment		body		ledger.AttachmentInput	true	"Attachment"
// @Router			/v1/organizations/{organizationId}/vouchers/{id}/attachments [post]
func (co Controller) CreateAttachment(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var input ledger.AttachmentInput
	if err := httputil.BindData(c, &input); err != nil {
		respondError(c, err)
		return
	}

	attachment, err := co.Ledger.AddAttachment(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, attachment)
}

// @Summary		Delete attachment
// @Tags			Vouchers
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		423				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/attachments/{id} [delete]
func (co Controller) DeleteAttachment(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	if err := co.Ledger.DeleteAttachment(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
