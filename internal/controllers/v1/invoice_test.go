package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/clubledger/backend/internal/controllers/v1"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/clubledger/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestInvoice(organizationID uuid.UUID, amount string, due time.Time) models.Invoice {
	r := test.Request(suite.T(), http.MethodPost, orgURL(organizationID, "/invoices"), ledger.InvoiceInput{
		Counterparty: "Sports equipment Ltd.",
		Amount:       types.MustParseMoney(amount),
		DueDate:      due,
		Sphere:       models.SpherePurpose,
		Category:     "Equipment",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var i v1.Response[models.Invoice]
	test.DecodeResponse(suite.T(), &r, &i)
	return i.Data
}

func (suite *TestSuiteStandard) TestInvoicesSettlement() {
	o := suite.createTestOrganization()
	invoice := suite.createTestInvoice(o.ID, "250", time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(suite.T(), models.InvoiceOpen, invoice.Status)

	paymentsURL := orgURL(o.ID, "/invoices/"+invoice.ID.String()+"/payments")
	date := time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC)

	r := test.Request(suite.T(), http.MethodPost, paymentsURL, ledger.InvoicePaymentInput{Amount: types.MustParseMoney("100"), Date: date})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.Response[models.Invoice]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.InvoicePartial, response.Data.Status)

	r = test.Request(suite.T(), http.MethodPost, paymentsURL, ledger.InvoicePaymentInput{Amount: types.MustParseMoney("150"), Date: date})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.InvoicePaid, response.Data.Status)

	if assert.Len(suite.T(), response.Data.Payments, 2) {
		payment := response.Data.Payments[1]

		r = test.Request(suite.T(), http.MethodDelete, orgURL(o.ID, "/invoice-payments/"+payment.ID.String()), nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Equal(suite.T(), models.InvoicePartial, response.Data.Status)
	}

	r = test.Request(suite.T(), http.MethodDelete, orgURL(o.ID, "/invoice-payments/"+uuid.NewString()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInvoicesList() {
	o := suite.createTestOrganization()
	suite.createTestInvoice(o.ID, "10", time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC))
	paid := suite.createTestInvoice(o.ID, "20", time.Date(2020, 2, 28, 0, 0, 0, 0, time.UTC))
	suite.createTestInvoice(o.ID, "30", time.Now().UTC().AddDate(1, 0, 0))

	r := test.Request(suite.T(), http.MethodPost, orgURL(o.ID, "/invoices/"+paid.ID.String()+"/payments"), ledger.InvoicePaymentInput{
		Amount: types.MustParseMoney("20"),
		Date:   time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name   string
		query  string
		total  int64
		length int
	}{
		{"All", "", 3, 3},
		{"Paid", "status=PAID", 1, 1},
		{"Open", "status=OPEN", 2, 2},
		{"Overdue", "overdue=true", 1, 1},
		{"Paged", "limit=2", 3, 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, orgURL(o.ID, "/invoices?"+tt.query), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.Response[ledger.InvoicePage]
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.total, response.Data.Total)
			assert.Len(t, response.Data.Invoices, tt.length)
		})
	}
}
