package v1

import (
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterMemberRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetMembers)
		r.POST("", co.CreateMember)
	}

	// Member with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGet)
		r.GET("/:id", co.GetMember)
		r.GET("/:id/status", co.GetMemberStatus)
		r.GET("/:id/history", co.GetPaymentHistory)

		r.OPTIONS("/:id/payments", httputil.Options(http.MethodPut))
		r.PUT("/:id/payments", co.MarkPaid)
		r.OPTIONS("/:id/payments/:periodKey", httputil.Options(http.MethodDelete))
		r.DELETE("/:id/payments/:periodKey", co.UnmarkPaid)
	}
}

func (co Controller) RegisterReconciliationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/dues", httputil.OptionsGet)
	r.GET("/dues", co.GetDues)
	r.OPTIONS("/suggestions", httputil.OptionsGet)
	r.GET("/suggestions", co.GetSuggestions)
}

type MemberQueryFilter struct {
	Search string `form:"search" example:"doe*"` // Glob on name and number, case and accent insensitive
}

type URIPeriod struct {
	URIID
	PeriodKey string `uri:"periodKey" binding:"required" example:"2024-03"`
}

type QueryLimit struct {
	Limit int `form:"limit" binding:"omitempty,min=1" example:"12"` // Maximum number of records. Defaults to 50
}

// SuggestionQuery is the query string of the voucher suggestions.
type SuggestionQuery struct {
	MemberName string      `form:"memberName" binding:"required" example:"Jane Doe"`
	Amount     types.Money `form:"amount" example:"10.00"`
	PeriodKey  string      `form:"periodKey" binding:"required" example:"2024-03"`
}

// @Summary		Get members
// @Tags			Members
// @Produce		json
// @Success		200				{object}	Response[[]models.Member]
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			search			query		string	false	"Glob on name and number"
// @Router			/v1/organizations/{organizationId}/members [get]
func (co Controller) GetMembers(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var filter MemberQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		respondError(c, err)
		return
	}

	members, err := co.Ledger.ListMembers(requestContext(c), uri.OrganizationID.UUID, filter.Search)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, members)
}

// @Summary		Create member
// @Tags			Members
// @Produce		json
// @Success		201				{object}	Response[models.Member]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Param			organizationId	path		string				true	"ID formatted as string"
// @Param			member			body		ledger.MemberInput	true	"Member"
// @Router			/v1/organizations/{organizationId}/members [post]
func (co Controller) CreateMember(c *gin.Context) {
	createResource(c, co.Ledger.CreateMember)
}

// @Summary		Get member
// @Tags			Members
// @Produce		json
// @Success		200				{object}	Response[models.Member]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/members/{id} [get]
func (co Controller) GetMember(c *gin.Context) {
	getResource(c, co.Ledger.GetMember)
}

// @Summary		Get member status
// @Description	Returns whether the member is up to date with the fees as of today
// @Tags			Members
// @Produce		json
// @Success		200				{object}	Response[ledger.MemberStatus]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/members/{id}/status [get]
func (co Controller) GetMemberStatus(c *gin.Context) {
	getResource(c, co.Ledger.MemberStatus)
}

// @Summary		Get payment history
// @Description	Returns the latest payments of the member, oldest first
// @Tags			Members
// @Produce		json
// @Success		200				{object}	Response[[]ledger.PaymentRecord]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Param			limit			query		int		false	"Maximum number of records. Defaults to 50."
// @Router			/v1/organizations/{organizationId}/members/{id}/history [get]
func (co Controller) GetPaymentHistory(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var query QueryLimit
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	history, err := co.Ledger.PaymentHistory(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, history)
}

// @Summary		Mark period paid
// @Description	Records the payment of the member's fee for a period. Marking a period again updates its record
// @Tags			Members
// @Produce		json
// @Success		200				{object}	Response[ledger.PaymentRecord]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string					true	"ID formatted as string"
// @Param			id				path		string					true	"ID formatted as string"
// @Param			payment			body		ledger.MarkPaidInput	true	"Payment. The member ID is taken from the path"
// @Router			/v1/organizations/{organizationId}/members/{id}/payments [put]
func (co Controller) MarkPaid(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var input ledger.MarkPaidInput
	if err := httputil.BindData(c, &input); err != nil {
		respondError(c, err)
		return
	}
	input.MemberID = uri.ID.UUID

	record, err := co.Ledger.MarkPaid(requestContext(c), uri.OrganizationID.UUID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, record)
}

// @Summary		Unmark period
// @Description	Removes the payment record of the period. Periods without a record are ignored
// @Tags			Members
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Param			periodKey		path		string	true	"Period key, e.g. 2024-03, 2024-Q1 or 2024"
// @Router			/v1/organizations/{organizationId}/members/{id}/payments/{periodKey} [delete]
func (co Controller) UnmarkPaid(c *gin.Context) {
	var uri URIPeriod
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	if err := co.Ledger.Unmark(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID, uri.PeriodKey); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get dues
// @Description	Lists the fee of each member for each period of the range and whether it is paid
// @Tags			Reconciliation
// @Produce		json
// @Success		200				{object}	Response[[]ledger.DueEntry]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			interval		query		string	true	"MONTHLY, QUARTERLY or YEARLY"
// @Param			from			query		string	false	"First period key"
// @Param			to				query		string	false	"Last period key, defaults to from"
// @Param			search			query		string	false	"Glob on member name and number"
// @Router			/v1/organizations/{organizationId}/dues [get]
func (co Controller) GetDues(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var query ledger.DueQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	entries, err := co.Ledger.ListDue(requestContext(c), uri.OrganizationID.UUID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, entries)
}

// @Summary		Get voucher suggestions
// @Description	Ranks vouchers that may be the payment of a member's fee for a period
// @Tags			Reconciliation
// @Produce		json
// @Success		200				{object}	Response[[]ledger.Suggestion]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			memberName		query		string	true	"Name of the member"
// @Param			amount			query		string	false	"Expected amount"
// @Param			periodKey		query		string	true	"Period key"
// @Router			/v1/organizations/{organizationId}/suggestions [get]
func (co Controller) GetSuggestions(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var query SuggestionQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	suggestions, err := co.Ledger.SuggestVouchers(requestContext(c), uri.OrganizationID.UUID, query.MemberName, query.Amount, query.PeriodKey)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, suggestions)
}
