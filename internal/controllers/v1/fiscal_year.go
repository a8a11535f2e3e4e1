package v1

import (
	"bytes"
	"context"
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (co Controller) RegisterFiscalYearRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetFiscalYears)

	r.OPTIONS("/:year", httputil.OptionsGet)
	r.GET("/:year", co.GetFiscalYear)
	r.GET("/:year/preview", co.GetClosePreview)
	r.GET("/:year/export", co.ExportFiscalYear)

	r.OPTIONS("/:year/close", httputil.Options(http.MethodPost))
	r.POST("/:year/close", co.CloseFiscalYear)
	r.OPTIONS("/:year/reopen", httputil.Options(http.MethodPost))
	r.POST("/:year/reopen", co.ReopenFiscalYear)
}

type QueryFormat struct {
	Format string `form:"format" binding:"omitempty,oneof=json yaml" example:"yaml"` // Output format, defaults to json
}

// @Summary		Get fiscal years
// @Description	Returns all years with vouchers or an explicit state, newest first
// @Tags			Fiscal years
// @Produce		json
// @Success		200				{object}	Response[[]ledger.YearStatus]
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/fiscal-years [get]
func (co Controller) GetFiscalYears(c *gin.Context) {
	listResources(c, co.Ledger.ListFiscalYears)
}

func fiscalYear[T any](c *gin.Context, fn func(context.Context, uuid.UUID, int) (T, error)) {
	var uri URIYear
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	result, err := fn(requestContext(c), uri.OrganizationID.UUID, uri.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, result)
}

// @Summary		Get fiscal year
// @Tags			Fiscal years
// @Produce		json
// @Success		200				{object}	Response[ledger.YearStatus]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			year			path		int		true	"Fiscal year"
// @Router			/v1/organizations/{organizationId}/fiscal-years/{year} [get]
func (co Controller) GetFiscalYear(c *gin.Context) {
	fiscalYear(c, co.Ledger.FiscalYearStatus)
}

// @Summary		Preview year closing
// @Description	Returns the totals of the year by account, sphere and earmark together with warnings about inconsistent vouchers
// @Tags			Fiscal years
// @Produce		json
// @Success		200				{object}	Response[ledger.YearPreview]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			year			path		int		true	"Fiscal year"
// @Router			/v1/organizations/{organizationId}/fiscal-years/{year}/preview [get]
func (co Controller) GetClosePreview(c *gin.Context) {
	fiscalYear(c, co.Ledger.PreviewClose)
}

// @Summary		Close fiscal year
// @Description	Closes the year. Vouchers of closed years cannot be changed
// @Tags			Fiscal years
// @Produce		json
// @Success		200				{object}	Response[ledger.YearStatus]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			year			path		int		true	"Fiscal year"
// @Router			/v1/organizations/{organizationId}/fiscal-years/{year}/close [post]
func (co Controller) CloseFiscalYear(c *gin.Context) {
	fiscalYear(c, co.Ledger.CloseYear)
}

// @Summary		Reopen fiscal year
// @Tags			Fiscal years
// @Produce		json
// @Success		200				{object}	Response[ledger.YearStatus]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			year			path		int		true	"Fiscal year"
// @Router			/v1/organizations/{organizationId}/fiscal-years/{year}/reopen [post]
func (co Controller) ReopenFiscalYear(c *gin.Context) {
	fiscalYear(c, co.Ledger.ReopenYear)
}

// @Summary		Export fiscal year
// @Description	Returns a snapshot of the year with all vouchers and the usage of earmarks and budgets
// @Tags			Fiscal years
// @Produce		json,application/yaml
// @Success		200				{object}	ledger.YearExport
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			year			path		int		true	"Fiscal year"
// @Param			format			query		string	false	"json or yaml"
// @Router			/v1/organizations/{organizationId}/fiscal-years/{year}/export [get]
func (co Controller) ExportFiscalYear(c *gin.Context) {
	var uri URIYear
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var query QueryFormat
	if err := httputil.BindQuery(c, &query); err != nil {
		respondError(c, err)
		return
	}

	export, err := co.Ledger.ExportYear(requestContext(c), uri.OrganizationID.UUID, uri.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	var out bytes.Buffer
	if err := export.Write(&out, query.Format); err != nil {
		respondError(c, err)
		return
	}

	contentType := "application/json; charset=utf-8"
	if query.Format == ledger.FormatYAML {
		contentType = "application/yaml; charset=utf-8"
	}

	c.Data(http.StatusOK, contentType, out.Bytes())
}
