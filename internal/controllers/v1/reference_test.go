package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/clubledger/backend/internal/controllers/v1"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccounts() {
	o := suite.createTestOrganization()
	bank := suite.createTestAccount(o.ID, "1200", models.AccountAsset)
	assert.True(suite.T(), bank.Active)

	tests := []struct {
		name   string
		input  ledger.AccountInput
		status int
	}{
		{"Duplicate number", ledger.AccountInput{Number: "1200", Name: "Cash", Type: models.AccountAsset}, http.StatusConflict},
		{"Invalid type", ledger.AccountInput{Number: "1300", Name: "Cash", Type: "GOLD"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, orgURL(o.ID, "/accounts"), tt.input)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	inactive := false
	r := test.Request(suite.T(), http.MethodPatch, orgURL(o.ID, "/accounts/"+bank.ID.String()), ledger.AccountUpdate{Active: &inactive})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var account v1.Response[models.Account]
	test.DecodeResponse(suite.T(), &r, &account)
	assert.False(suite.T(), account.Data.Active)

	r = test.Request(suite.T(), http.MethodGet, orgURL(o.ID, "/accounts"), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var accounts v1.Response[[]models.Account]
	test.DecodeResponse(suite.T(), &r, &accounts)
	assert.Len(suite.T(), accounts.Data, 1)
}

func (suite *TestSuiteStandard) TestTags() {
	o := suite.createTestOrganization()

	r := test.Request(suite.T(), http.MethodPost, orgURL(o.ID, "/tags"), ledger.TagInput{Name: "Donation"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, orgURL(o.ID, "/tags"), ledger.TagInput{Name: "Donation"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodGet, orgURL(o.ID, "/tags"), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var tags v1.Response[[]models.Tag]
	test.DecodeResponse(suite.T(), &r, &tags)
	assert.Len(suite.T(), tags.Data, 1)
}

func (suite *TestSuiteStandard) TestEarmarksAndBudgets() {
	o := suite.createTestOrganization()
	suite.createTestEarmark(o.ID, "YOUTH")

	r := test.Request(suite.T(), http.MethodPost, orgURL(o.ID, "/earmarks"), ledger.EarmarkInput{Code: "YOUTH", Name: "Again"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodPost, orgURL(o.ID, "/budgets"), ledger.BudgetInput{Label: "Regatta", Year: 2024})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Labels are unique per year only
	r = test.Request(suite.T(), http.MethodPost, orgURL(o.ID, "/budgets"), ledger.BudgetInput{Label: "Regatta", Year: 2025})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, orgURL(o.ID, "/budgets"), ledger.BudgetInput{Label: "Regatta", Year: 2024})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	tests := []struct {
		path   string
		length int
	}{
		{"/earmarks", 1},
		{"/budgets", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, orgURL(o.ID, tt.path), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.Response[[]any]
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.length)
		})
	}
}
