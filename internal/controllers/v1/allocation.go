package v1

import (
	"context"
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueryYear struct {
	Year *int `form:"year" binding:"omitempty,min=1" example:"2024"` // Fiscal year. Without it, usage covers all years
}

// BatchAssignRequest is the body of a batch assignment.
type BatchAssignRequest struct {
	Target      ledger.AssignTarget `json:"target"`
	Filter      ledger.BatchFilter  `json:"filter"`
	OnlyWithout bool                `json:"onlyWithout"` // Only update bookings that have no value for the target yet
}

func (co Controller) RegisterBookingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/batch-assign", httputil.Options(http.MethodPost))
	r.POST("/batch-assign", co.BatchAssign)
}

func usage(c *gin.Context, get func(context.Context, uuid.UUID, uuid.UUID, *int) (ledger.Usage, error)) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var query QueryYear
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	u, err := get(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID, query.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, u)
}

// @Summary		Get earmark usage
// @Description	Returns credits, debits and the resulting usage of an earmark. Credits count positive, debits negative
// @Tags			Earmarks
// @Produce		json
// @Success		200				{object}	Response[ledger.Usage]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Param			year			query		int		false	"Fiscal year"
// @Router			/v1/organizations/{organizationId}/earmarks/{id}/usage [get]
func (co Controller) GetEarmarkUsage(c *gin.Context) {
	usage(c, co.Ledger.EarmarkUsage)
}

// @Summary		Get budget usage
// @Description	Returns the usage of a budget and the remaining amount below its ceiling. Without a year, the year of the budget is used
// @Tags			Budgets
// @Produce		json
// @Success		200				{object}	Response[ledger.Usage]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			id				path		string	true	"ID formatted as string"
// @Param			year			query		int		false	"Fiscal year"
// @Router			/v1/organizations/{organizationId}/budgets/{id}/usage [get]
func (co Controller) GetBudgetUsage(c *gin.Context) {
	usage(c, co.Ledger.BudgetUsage)
}

// @Summary		Assign bookings
// @Description	Assigns an earmark, a budget or tags to all bookings matching the filter. Bookings in closed fiscal years are skipped
// @Tags			Bookings
// @Produce		json
// @Success		200				{object}	Response[ledger.BatchResult]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			organizationId	path		string				true	"ID formatted as string"
// @Param			assignment		body		BatchAssignRequest	true	"Assignment"
// @Router			/v1/organizations/{organizationId}/bookings/batch-assign [post]
func (co Controller) BatchAssign(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var request BatchAssignRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	result, err := co.Ledger.BatchAssign(requestContext(c), uri.OrganizationID.UUID, request.Target, request.Filter, request.OnlyWithout)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, result)
}
