package v1

import (
	"context"
	"net/http"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// createResource binds the body to the input of create and responds with
// the created resource.
func createResource[I, R any](c *gin.Context, create func(context.Context, uuid.UUID, I) (R, error)) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	var input I
	if err := httputil.BindData(c, &input); err != nil {
		respondError(c, err)
		return
	}

	resource, err := create(requestContext(c), uri.OrganizationID.UUID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, resource)
}

// listResources responds with all resources of the organization.
func listResources[R any](c *gin.Context, list func(context.Context, uuid.UUID) ([]R, error)) {
	var uri URIOrganization
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	resources, err := list(requestContext(c), uri.OrganizationID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, resources)
}

// getResource responds with the resource identified by the path.
func getResource[R any](c *gin.Context, get func(context.Context, uuid.UUID, uuid.UUID) (R, error)) {
	var uri URIID
	if err := httputil.BindURI(c, &uri); err != nil {
		respondError(c, err)
		return
	}

	resource, err := get(requestContext(c), uri.OrganizationID.UUID, uri.ID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, resource)
}
