package v1

import (
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetAccounts)
	r.POST("", co.CreateAccount)

	r.OPTIONS("/:id", httputil.Options(http.MethodPatch))
	r.PATCH("/:id", co.UpdateAccount)
}

func (co Controller) RegisterEarmarkRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetEarmarks)
	r.POST("", co.CreateEarmark)

	r.OPTIONS("/:id/usage", httputil.OptionsGet)
	r.GET("/:id/usage", co.GetEarmarkUsage)
}

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudget)

	r.OPTIONS("/:id/usage", httputil.OptionsGet)
	r.GET("/:id/usage", co.GetBudgetUsage)
}

func (co Controller) RegisterTagRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetTags)
	r.POST("", co.CreateTag)
}

// @Summary		Get accounts
// @Description	Returns the chart of accounts, ordered by account number
// @Tags			Accounts
// @Produce		json
// @Success		200				{object}	Response[[]models.Account]
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	listResources(c, co.Ledger.ListAccounts)
}

// @Summary		Create account
// @Tags			Accounts
// @Produce		json
// @Success		201				{object}	Response[models.Account]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Param			organizationId	path		string				true	"ID formatted as string"
// @Param			account			body		ledger.AccountInput	true	"Account"
// @Router			/v1/organizations/{organizationId}/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	createResource(c, co.Ledger.CreateAccount)
}

// @Summary		Update account
// @Description	Updates an account. Accounts with bookings can only change name and active state
// @Tags			Accounts
// @Produce		json
// @Success		200				{object}	Response[models.Account]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Param			organizationId	path		string					true	"ID formatted as string"
// @Param			id				path		string					true	"ID formatted as string"
// @Param			account			body		ledger.AccountUpdate	true	"Account"
// @Router			/v1/organizations/{organizationId}/accounts/{id} [patch]
func (co Controller) UpdateAccount(c *gin.Context) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var update ledger.AccountUpdate
	if err := httputil.BindData(c, &update); err != nil {
		respondError(c, err)
		return
	}

	account, err := co.Ledger.UpdateAccount(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, account)
}

// @Summary		Get earmarks
// @Tags			Earmarks
// @Produce		json
// @Success		200				{object}	Response[[]models.Earmark]
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/earmarks [get]
func (co Controller) GetEarmarks(c *gin.Context) {
	listResources(c, co.Ledger.ListEarmarks)
}

// @Summary		Create earmark
// @Tags			Earmarks
// @Produce		json
// @Success		201				{object}	Response[models.Earmark]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Param			organizationId	path		string				true	"ID formatted as string"
// @Param			earmark			body		ledger.EarmarkInput	true	"Earmark"
// @Router			/v1/organizations/{organizationId}/earmarks [post]
func (co Controller) CreateEarmark(c *gin.Context) {
	createResource(c, co.Ledger.CreateEarmark)
}

// @Summary		Get budgets
// @Tags			Budgets
// @Produce		json
// @Success		200				{object}	Response[[]models.Budget]
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	listResources(c, co.Ledger.ListBudgets)
}

// @Summary		Create budget
// @Tags			Budgets
// @Produce		json
// @Success		201				{object}	Response[models.Budget]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Param			organizationId	path		string				true	"ID formatted as string"
// @Param			budget			body		ledger.BudgetInput	true	"Budget"
// @Router			/v1/organizations/{organizationId}/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	createResource(c, co.Ledger.CreateBudget)
}

// @Summary		Get tags
// @Tags			Tags
// @Produce		json
// @Success		200				{object}	Response[[]models.Tag]
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/tags [get]
func (co Controller) GetTags(c *gin.Context) {
	listResources(c, co.Ledger.ListTags)
}

// @Summary		Create tag
// @Tags			Tags
// @Produce		json
// @Success		201				{object}	Response[models.Tag]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Param			organizationId	path		string			true	"ID formatted as string"
// @Param			tag				body		ledger.TagInput	true	"Tag"
// @Router			/v1/organizations/{organizationId}/tags [post]
func (co Controller) CreateTag(c *gin.Context) {
	createResource(c, co.Ledger.CreateTag)
}
