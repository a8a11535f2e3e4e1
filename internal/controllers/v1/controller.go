// Package v1 is the HTTP adapter of the ledger. Handlers bind the request,
// call exactly one ledger operation and render its result.
package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	ez_uuid "github.com/clubledger/backend/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HeaderUserID carries the id of the user acting on the ledger. It is
// recorded in the audit log.
const HeaderUserID = "X-User-ID"

type Controller struct {
	Ledger *ledger.Ledger
}

// Response is the body of every resource endpoint.
type Response[T any] struct {
	Data  T       `json:"data"`
	Error *string `json:"error,omitempty" example:"the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"`
}

type httpError struct {
	Error string `json:"error" example:"invalid input: the voucher is not balanced"`
}

type URIOrganization struct {
	OrganizationID ez_uuid.UUID `uri:"organizationId" binding:"required" format:"UUID"` // ID of the organization
}

type URIID struct {
	URIOrganization
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIYear struct {
	URIOrganization
	Year int `uri:"year" binding:"required" example:"2024"` // Fiscal year
}

// status returns the HTTP status for an error returned by the ledger
// or the request binding.
func status(err error) int {
	switch {
	case errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQuery),
		errors.Is(err, httputil.ErrInvalidPath),
		errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrLockedPeriod):
		return http.StatusLocked
	case errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrConstraint):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// respondError renders the error. Server errors are logged with the
// request id and their details are not sent to the client.
func respondError(c *gin.Context, err error) {
	code := status(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		if !errors.Is(err, models.ErrGeneral) {
			message = models.ErrGeneral.Error()
		}
	}

	c.JSON(code, Response[any]{Error: &message})
}

func respond[T any](c *gin.Context, code int, data T) {
	c.JSON(code, Response[T]{Data: data})
}

// requestContext returns the request context with the acting user.
func requestContext(c *gin.Context) context.Context {
	return ledger.WithUser(c.Request.Context(), c.GetHeader(HeaderUserID))
}

// RegisterRoutes registers all ledger routes below the passed group,
// which is usually /v1/organizations.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.Options(http.MethodPost))
	r.POST("", co.CreateOrganization)

	org := r.Group("/:organizationId")
	{
		org.OPTIONS("", httputil.OptionsGet)
		org.GET("", co.GetOrganization)
		org.GET("/export", co.ExportOrganization)
		org.GET("/audit-log", co.GetAuditLog)
	}

	co.RegisterAccountRoutes(org.Group("/accounts"))
	co.RegisterEarmarkRoutes(org.Group("/earmarks"))
	co.RegisterBudgetRoutes(org.Group("/budgets"))
	co.RegisterTagRoutes(org.Group("/tags"))
	co.RegisterVoucherRoutes(org.Group("/vouchers"))
	co.RegisterAttachmentRoutes(org.Group("/attachments"))
	co.RegisterFiscalYearRoutes(org.Group("/fiscal-years"))
	co.RegisterBookingRoutes(org.Group("/bookings"))
	co.RegisterMemberRoutes(org.Group("/members"))
	co.RegisterReconciliationRoutes(org)
	co.RegisterInvoiceRoutes(org.Group("/invoices"))
	co.RegisterInvoicePaymentRoutes(org.Group("/invoice-payments"))
}
