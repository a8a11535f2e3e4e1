package v1

import (
	"encoding/json"
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// @Summary		Create organization
// @Description	Creates a new organization. The currency defaults to the configured default currency
// @Tags			Organizations
// @Produce		json
// @Success		201				{object}	Response[models.Organization]
// @Failure		400				{object}	httpError
// @Failure		409				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			organization	body		ledger.OrganizationInput	true	"Organization"
// @Router			/v1/organizations [post]
func (co Controller) CreateOrganization(c *gin.Context) {
	var input ledger.OrganizationInput
	if err := httputil.BindData(c, &input); err != nil {
		respondError(c, err)
		return
	}

	organization, err := co.Ledger.CreateOrganization(requestContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, organization)
}

// @Summary		Get organization
// @Tags			Organizations
// @Produce		json
// @Success		200				{object}	Response[models.Organization]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId} [get]
func (co Controller) GetOrganization(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	organization, err := co.Ledger.GetOrganization(requestContext(c), uri.OrganizationID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, organization)
}

// @Summary		Export organization
// @Description	Exports all resources of the organization, keyed by resource type
// @Tags			Organizations
// @Produce		json
// @Success		200				{object}	Response[map[string][]object]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Router			/v1/organizations/{organizationId}/export [get]
func (co Controller) ExportOrganization(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	resources, err := co.Ledger.ExportOrganization(requestContext(c), uri.OrganizationID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, map[string]json.RawMessage(resources))
}

type AuditLogQueryFilter struct {
	ledger.AuditFilter
	ledger.Page
}

// @Summary		Get audit log
// @Description	Returns the audit log of the organization, newest entries first
// @Tags			Organizations
// @Produce		json
// @Success		200				{object}	Response[ledger.AuditPage]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			organizationId	path		string	true	"ID formatted as string"
// @Param			entityType		query		string	false	"Filter by entity type, e.g. Voucher"
// @Param			entityId		query		string	false	"Filter by entity ID"
// @Param			action			query		string	false	"Filter by action, e.g. voucher.create"
// @Param			offset			query		int		false	"The offset of the first entry returned. Defaults to 0."
// @Param			limit			query		int		false	"Maximum number of entries to return. Defaults to 50."
// @Router			/v1/organizations/{organizationId}/audit-log [get]
func (co Controller) GetAuditLog(c *gin.Context) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var filter AuditLogQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		respondError(c, err)
		return
	}

	page, err := co.Ledger.ListAuditLog(requestContext(c), uri.OrganizationID.UUID, filter.AuditFilter, filter.Page)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, page)
}
