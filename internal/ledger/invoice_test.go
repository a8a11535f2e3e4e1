package ledger_test

import (
	"context"

	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestInvoiceSettlement() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	costs := suite.createTestAccount(org.ID, "6000", models.AccountExpense)

	invoice, err := suite.ledger.CreateInvoice(ctx, org.ID, ledger.InvoiceInput{
		Counterparty: "Boat builder Ltd.",
		Amount:       types.MustParseMoney("250"),
		DueDate:      date(2024, 7, 1),
		Category:     "Equipment",
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.InvoiceOpen, invoice.Status)
	suite.Assert().Empty(invoice.Payments)

	voucher := suite.createTestVoucher(org.ID, date(2024, 6, 1), "Boat repair", debit(costs, "100"), credit(bank, "100"))

	invoice, err = suite.ledger.RecordInvoicePayment(ctx, org.ID, invoice.ID, ledger.InvoicePaymentInput{
		Amount:    types.MustParseMoney("100"),
		Date:      date(2024, 6, 1),
		VoucherID: &voucher.ID,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.InvoicePartial, invoice.Status)
	suite.Require().Len(invoice.Payments, 1)

	invoice, err = suite.ledger.RecordInvoicePayment(ctx, org.ID, invoice.ID, ledger.InvoicePaymentInput{
		Amount: types.MustParseMoney("150"),
		Date:   date(2024, 6, 10),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.InvoicePaid, invoice.Status)
	suite.Require().Len(invoice.Payments, 2)
	suite.Assert().Equal(types.MustParseMoney("250"), invoice.Paid())

	invoice, err = suite.ledger.DeleteInvoicePayment(ctx, org.ID, invoice.Payments[1].ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.InvoicePartial, invoice.Status)

	invoice, err = suite.ledger.DeleteInvoicePayment(ctx, org.ID, invoice.Payments[0].ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.InvoiceOpen, invoice.Status)

	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionInvoiceCreate))
	suite.Assert().Equal(int64(2), suite.auditCount(org.ID, ledger.ActionInvoicePayment))
	suite.Assert().Equal(int64(2), suite.auditCount(org.ID, ledger.ActionInvoicePaymentDel))

	_, err = suite.ledger.DeleteInvoicePayment(ctx, org.ID, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestInvoiceValidation() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	other := suite.createTestOrganization()
	foreign := suite.createTestEarmark(other.ID, "YOUTH")

	_, err := suite.ledger.CreateInvoice(ctx, org.ID, ledger.InvoiceInput{Counterparty: "Town", Amount: types.MustParseMoney("10")})
	suite.Assert().ErrorIs(err, models.ErrValidation, "invoices need a due date")

	_, err = suite.ledger.CreateInvoice(ctx, org.ID, ledger.InvoiceInput{Counterparty: "Town", Amount: types.MustParseMoney("10"), DueDate: date(2024, 1, 1), EarmarkID: &foreign.ID})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	invoice, err := suite.ledger.CreateInvoice(ctx, org.ID, ledger.InvoiceInput{Counterparty: "Town", Amount: types.MustParseMoney("10"), DueDate: date(2024, 1, 1)})
	suite.Require().Nil(err)

	_, err = suite.ledger.RecordInvoicePayment(ctx, other.ID, invoice.ID, ledger.InvoicePaymentInput{Amount: types.MustParseMoney("10"), Date: date(2024, 1, 1)})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "invoices of other organizations must not be found")

	unknown := uuid.New()
	_, err = suite.ledger.RecordInvoicePayment(ctx, org.ID, invoice.ID, ledger.InvoicePaymentInput{Amount: types.MustParseMoney("10"), Date: date(2024, 1, 1), VoucherID: &unknown})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestListInvoices() {
	ctx := context.Background()
	org := suite.createTestOrganization()

	create := func(due string, amount string) models.Invoice {
		d, err := types.ParsePeriodKey(due)
		suite.Require().Nil(err)

		invoice, err := suite.ledger.CreateInvoice(ctx, org.ID, ledger.InvoiceInput{
			Counterparty: "Supplier " + due,
			Amount:       types.MustParseMoney(amount),
			DueDate:      d.Start(),
		})
		suite.Require().Nil(err)
		return invoice
	}

	overdue := create("2024-05", "100")
	paid := create("2024-04", "50")
	create("2024-08", "10")

	_, err := suite.ledger.RecordInvoicePayment(ctx, org.ID, paid.ID, ledger.InvoicePaymentInput{Amount: types.MustParseMoney("50"), Date: date(2024, 4, 2)})
	suite.Require().Nil(err)

	page, err := suite.ledger.ListInvoices(ctx, org.ID, ledger.InvoiceFilter{}, ledger.Page{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), page.Total)
	suite.Assert().Equal(paid.ID, page.Invoices[0].ID, "invoices are ordered by due date")

	page, err = suite.ledger.ListInvoices(ctx, org.ID, ledger.InvoiceFilter{Overdue: true}, ledger.Page{})
	suite.Require().Nil(err)
	suite.Require().Equal(int64(1), page.Total)
	suite.Assert().Equal(overdue.ID, page.Invoices[0].ID)

	page, err = suite.ledger.ListInvoices(ctx, org.ID, ledger.InvoiceFilter{Status: models.InvoicePaid}, ledger.Page{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), page.Total)

	_, err = suite.ledger.ListInvoices(ctx, org.ID, ledger.InvoiceFilter{Status: "LOST"}, ledger.Page{})
	suite.Assert().ErrorIs(err, models.ErrValidation)
}
