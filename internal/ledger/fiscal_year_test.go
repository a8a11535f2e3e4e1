package ledger_test

import (
	"context"

	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"gorm.io/gorm/clause"
)

func (suite *TestSuiteStandard) TestFiscalYearStatus() {
	ctx := context.Background()
	org := suite.createTestOrganization()

	status, err := suite.ledger.FiscalYearStatus(ctx, org.ID, 2024)
	suite.Require().Nil(err)
	suite.Assert().False(status.Closed, "years without status are open")
	suite.Assert().Nil(status.ClosedAt)

	status, err = suite.ledger.CloseYear(ctx, org.ID, 2024)
	suite.Require().Nil(err)
	suite.Assert().True(status.Closed)
	suite.Require().NotNil(status.ClosedAt)
	suite.Assert().True(suite.now.Equal(*status.ClosedAt))

	// Closing again changes nothing
	_, err = suite.ledger.CloseYear(ctx, org.ID, 2024)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionFiscalYearClose))

	status, err = suite.ledger.ReopenYear(ctx, org.ID, 2024)
	suite.Require().Nil(err)
	suite.Assert().False(status.Closed)
	suite.Assert().Nil(status.ClosedAt)

	_, err = suite.ledger.ReopenYear(ctx, org.ID, 2024)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionFiscalYearReopen))

	_, err = suite.ledger.CloseYear(ctx, org.ID, 12)
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = suite.ledger.FiscalYearStatus(ctx, org.ID, 10000)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestListFiscalYears() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)

	suite.createTestVoucher(org.ID, date(2024, 1, 1), "", debit(bank, "1"), credit(fees, "1"))
	suite.createTestVoucher(org.ID, date(2022, 1, 1), "", debit(bank, "1"), credit(fees, "1"))

	_, err := suite.ledger.CloseYear(ctx, org.ID, 2021)
	suite.Require().Nil(err)

	years, err := suite.ledger.ListFiscalYears(ctx, org.ID)
	suite.Require().Nil(err)
	suite.Require().Len(years, 3)
	suite.Assert().Equal(2021, years[0].Year)
	suite.Assert().True(years[0].Closed)
	suite.Assert().Equal(2022, years[1].Year)
	suite.Assert().False(years[1].Closed)
	suite.Assert().Equal(2024, years[2].Year)
}

func (suite *TestSuiteStandard) TestPreviewClose() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	rent := suite.createTestAccount(org.ID, "6000", models.AccountExpense)
	youth := suite.createTestEarmark(org.ID, "YOUTH")

	_, err := suite.ledger.CreateVoucher(ctx, org.ID, ledger.VoucherInput{
		Date:   date(2023, 2, 1),
		Type:   models.VoucherReceipt,
		Sphere: models.SphereIdeal,
		Lines: []ledger.BookingLine{
			debit(bank, "100"),
			{AccountID: fees.ID, Credit: amount("100"), EarmarkID: &youth.ID},
		},
	})
	suite.Require().Nil(err)

	_, err = suite.ledger.CreateVoucher(ctx, org.ID, ledger.VoucherInput{
		Date:   date(2023, 3, 1),
		Type:   models.VoucherInvoice,
		Sphere: models.SphereBusiness,
		Lines:  []ledger.BookingLine{debit(rent, "40"), credit(bank, "40")},
	})
	suite.Require().Nil(err)

	// A voucher in another year is not part of the preview
	suite.createTestVoucher(org.ID, date(2024, 1, 1), "", debit(bank, "7"), credit(fees, "7"))

	// A voucher without bookings, as left behind by an import
	empty := models.Voucher{OrganizationID: org.ID, Date: date(2023, 4, 1), Number: 3, Type: models.VoucherJournal}
	suite.Require().Nil(models.DB.Omit(clause.Associations).Create(&empty).Error)

	// Deactivate the rent account after it has been used
	_, err = suite.ledger.UpdateAccount(ctx, org.ID, rent.ID, ledger.AccountUpdate{Active: new(bool)})
	suite.Require().Nil(err)

	preview, err := suite.ledger.PreviewClose(ctx, org.ID, 2023)
	suite.Require().Nil(err)

	suite.Assert().False(preview.Closed)
	suite.Assert().Equal(3, preview.VoucherCount)
	suite.Assert().Equal(types.MustParseMoney("140"), preview.TotalDebit)
	suite.Assert().Equal(types.MustParseMoney("140"), preview.TotalCredit)

	suite.Require().Len(preview.ByAccount, 3)
	suite.Assert().Equal("1200", preview.ByAccount[0].Number)
	suite.Assert().Equal(types.MustParseMoney("100"), preview.ByAccount[0].Debit)
	suite.Assert().Equal(types.MustParseMoney("40"), preview.ByAccount[0].Credit)
	suite.Assert().Equal(types.MustParseMoney("-60"), preview.ByAccount[0].Net)

	suite.Require().Len(preview.BySphere, 3)
	suite.Assert().Equal(models.Sphere(""), preview.BySphere[0].Sphere)
	suite.Assert().Equal(models.SphereBusiness, preview.BySphere[1].Sphere)
	suite.Assert().Equal(models.SphereIdeal, preview.BySphere[2].Sphere)

	suite.Require().Len(preview.ByEarmark, 2)
	suite.Assert().Equal("YOUTH", preview.ByEarmark[0].Code)
	suite.Assert().Equal(types.MustParseMoney("100"), preview.ByEarmark[0].Net)
	suite.Assert().Nil(preview.ByEarmark[1].EarmarkID, "bookings without earmark are summed last")

	suite.Require().Len(preview.Warnings, 2)
	suite.Assert().Equal("2023-2", preview.Warnings[0].Reference)
	suite.Assert().Contains(preview.Warnings[0].Message, "inactive account 6000")
	suite.Assert().Equal("2023-3", preview.Warnings[1].Reference)
	suite.Assert().Equal("the voucher has no bookings", preview.Warnings[1].Message)
}
