package ledger_test

import (
	"context"
	"testing"

	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestEarmarkUsage() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	youth := suite.createTestEarmark(org.ID, "YOUTH")

	voucher := suite.createTestVoucher(org.ID, date(2024, 2, 1), "Youth donation",
		debit(bank, "100"),
		ledger.BookingLine{AccountID: fees.ID, Credit: amount("100"), EarmarkID: &youth.ID},
	)

	usage, err := suite.ledger.EarmarkUsage(ctx, org.ID, youth.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseMoney("100"), usage.Usage)
	suite.Assert().Equal(int64(1), usage.Bookings)

	_, err = suite.ledger.UpdateVoucher(ctx, org.ID, voucher.ID, ledger.VoucherUpdate{
		Lines: []ledger.BookingLine{
			debit(bank, "60"),
			{AccountID: fees.ID, Credit: amount("60"), EarmarkID: &youth.ID},
		},
	})
	suite.Require().Nil(err)

	usage, err = suite.ledger.EarmarkUsage(ctx, org.ID, youth.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseMoney("60"), usage.Usage, "usage must follow updated bookings")

	// Spending from the earmark counts negative
	suite.createTestVoucher(org.ID, date(2025, 1, 10), "Youth camp",
		ledger.BookingLine{AccountID: fees.ID, Debit: amount("25"), EarmarkID: &youth.ID},
		credit(bank, "25"),
	)

	usage, err = suite.ledger.EarmarkUsage(ctx, org.ID, youth.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseMoney("35"), usage.Usage)
	suite.Assert().Equal(types.MustParseMoney("25"), usage.Debit)

	year := 2025
	usage, err = suite.ledger.EarmarkUsage(ctx, org.ID, youth.ID, &year)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseMoney("-25"), usage.Usage)
	suite.Require().NotNil(usage.Year)
	suite.Assert().Equal(2025, *usage.Year)

	suite.Require().Nil(suite.ledger.DeleteVoucher(ctx, org.ID, voucher.ID))

	year = 2024
	usage, err = suite.ledger.EarmarkUsage(ctx, org.ID, youth.ID, &year)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.Money(0), usage.Usage, "deleted bookings must not count")
	suite.Assert().Equal(int64(0), usage.Bookings)

	other := suite.createTestOrganization()
	_, err = suite.ledger.EarmarkUsage(ctx, other.ID, youth.ID, nil)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetUsage() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	costs := suite.createTestAccount(org.ID, "6000", models.AccountExpense)
	regatta := suite.createTestBudget(org.ID, ledger.BudgetInput{Label: "Regatta", Year: 2024, Ceiling: amount("500")})
	open := suite.createTestBudget(org.ID, ledger.BudgetInput{Label: "Open", Year: 2024})

	suite.createTestVoucher(org.ID, date(2024, 5, 1), "Boat transport",
		ledger.BookingLine{AccountID: costs.ID, Debit: amount("120"), BudgetID: &regatta.ID},
		credit(bank, "120"),
	)

	// Bookings outside the year of the budget are not counted by default
	suite.createTestVoucher(org.ID, date(2023, 12, 1), "Deposit",
		ledger.BookingLine{AccountID: costs.ID, Debit: amount("50"), BudgetID: &regatta.ID},
		credit(bank, "50"),
	)

	usage, err := suite.ledger.BudgetUsage(ctx, org.ID, regatta.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseMoney("-120"), usage.Usage)
	suite.Require().NotNil(usage.Year)
	suite.Assert().Equal(2024, *usage.Year)
	suite.Require().NotNil(usage.Remaining)
	suite.Assert().Equal(types.MustParseMoney("380"), *usage.Remaining)

	year := 2023
	usage, err = suite.ledger.BudgetUsage(ctx, org.ID, regatta.ID, &year)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseMoney("-50"), usage.Usage)

	usage, err = suite.ledger.BudgetUsage(ctx, org.ID, open.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Nil(usage.Ceiling)
	suite.Assert().Nil(usage.Remaining)
	suite.Assert().Equal(types.Money(0), usage.Usage)
}

func (suite *TestSuiteStandard) TestBatchAssignOnlyWithout() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	youth := suite.createTestEarmark(org.ID, "YOUTH")
	seniors := suite.createTestEarmark(org.ID, "SENIORS")

	// Five bookings, three of them already earmarked
	suite.createTestVoucher(org.ID, date(2024, 3, 1), "Fees",
		ledger.BookingLine{AccountID: bank.ID, Debit: amount("30"), EarmarkID: &seniors.ID},
		ledger.BookingLine{AccountID: fees.ID, Credit: amount("30"), EarmarkID: &seniors.ID},
	)
	suite.createTestVoucher(org.ID, date(2024, 3, 2), "Fees",
		ledger.BookingLine{AccountID: bank.ID, Debit: amount("20"), EarmarkID: &seniors.ID},
		credit(fees, "10"),
		credit(fees, "10"),
	)

	result, err := suite.ledger.BatchAssign(ctx, org.ID, ledger.AssignTarget{EarmarkID: &youth.ID}, ledger.BatchFilter{}, true)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), result.Updated)
	suite.Assert().Equal(int64(0), result.Skipped)

	usage, err := suite.ledger.EarmarkUsage(ctx, org.ID, youth.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), usage.Bookings)
	suite.Assert().Equal(types.MustParseMoney("20"), usage.Usage)

	usage, err = suite.ledger.EarmarkUsage(ctx, org.ID, seniors.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), usage.Bookings, "existing earmarks must be kept")

	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionBatchAssign))

	// Nothing left to assign
	result, err = suite.ledger.BatchAssign(ctx, org.ID, ledger.AssignTarget{EarmarkID: &youth.ID}, ledger.BatchFilter{}, true)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), result.Updated)
	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionBatchAssign), "empty assignments must not be audited")

	// Without the restriction, the other earmarks are overwritten
	result, err = suite.ledger.BatchAssign(ctx, org.ID, ledger.AssignTarget{EarmarkID: &youth.ID}, ledger.BatchFilter{}, false)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), result.Updated, "bookings that already have the earmark are not updated")

	usage, err = suite.ledger.EarmarkUsage(ctx, org.ID, youth.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(5), usage.Bookings)
}

func (suite *TestSuiteStandard) TestBatchAssignFilters() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	regatta := suite.createTestBudget(org.ID, ledger.BudgetInput{Label: "Regatta", Year: 2024})

	suite.createTestVoucher(org.ID, date(2023, 6, 1), "Regatta entry fees", debit(bank, "10"), credit(fees, "10"))
	suite.createTestVoucher(org.ID, date(2024, 6, 1), "Regatta entry fees", debit(bank, "10"), credit(fees, "10"))
	suite.createTestVoucher(org.ID, date(2024, 6, 2), "Membership fees", debit(bank, "10"), credit(fees, "10"))

	_, err := suite.ledger.CloseYear(ctx, org.ID, 2023)
	suite.Require().Nil(err)

	result, err := suite.ledger.BatchAssign(ctx, org.ID, ledger.AssignTarget{BudgetID: &regatta.ID}, ledger.BatchFilter{Search: "regatta"}, false)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), result.Updated)
	suite.Assert().Equal(int64(2), result.Skipped, "bookings in closed years must be skipped")

	year := 2023
	usage, err := suite.ledger.BudgetUsage(ctx, org.ID, regatta.ID, &year)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), usage.Bookings)

	from := date(2024, 6, 2)
	result, err = suite.ledger.BatchAssign(ctx, org.ID, ledger.AssignTarget{BudgetID: &regatta.ID}, ledger.BatchFilter{From: &from}, true)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), result.Updated)

	usage, err = suite.ledger.BudgetUsage(ctx, org.ID, regatta.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(4), usage.Bookings)
}

func (suite *TestSuiteStandard) TestBatchAssignTags() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	donation := suite.createTestTag(org.ID, "Donation")
	tax := suite.createTestTag(org.ID, "Tax relevant")

	voucher := suite.createTestVoucher(org.ID, date(2024, 4, 1), "Donation",
		ledger.BookingLine{AccountID: bank.ID, Debit: amount("50"), TagIDs: []uuid.UUID{donation.ID}},
		credit(fees, "50"),
	)

	result, err := suite.ledger.BatchAssign(ctx, org.ID, ledger.AssignTarget{TagIDs: []uuid.UUID{donation.ID, tax.ID}}, ledger.BatchFilter{}, false)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), result.Updated)

	voucher, err = suite.ledger.GetVoucher(ctx, org.ID, voucher.ID)
	suite.Require().Nil(err)
	suite.Require().Len(voucher.Bookings[0].Tags, 2, "existing tags must be kept without duplicates")
	suite.Require().Len(voucher.Bookings[1].Tags, 2)
	suite.Assert().Equal("Donation", voucher.Bookings[1].Tags[0].Name)
	suite.Assert().Equal("Tax relevant", voucher.Bookings[1].Tags[1].Name)

	tests := []struct {
		name   string
		tagIDs []uuid.UUID
	}{
		{"Same tags", []uuid.UUID{donation.ID, tax.ID}},
		{"Subset", []uuid.UUID{donation.ID}},
		{"Duplicates", []uuid.UUID{tax.ID, tax.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			result, err := suite.ledger.BatchAssign(ctx, org.ID, ledger.AssignTarget{TagIDs: tt.tagIDs}, ledger.BatchFilter{}, false)
			assert.Nil(t, err)
			assert.Equal(t, int64(0), result.Updated, "bookings that already carry all tags are not updated")
		})
	}

	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionBatchAssign), "batches without updates must not be audited")
}

func (suite *TestSuiteStandard) TestBatchAssignInvalid() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	other := suite.createTestOrganization()
	youth := suite.createTestEarmark(org.ID, "YOUTH")
	foreign := suite.createTestEarmark(other.ID, "YOUTH")
	regatta := suite.createTestBudget(org.ID, ledger.BudgetInput{Label: "Regatta", Year: 2024})

	tests := []struct {
		name   string
		target ledger.AssignTarget
		filter ledger.BatchFilter
		err    error
	}{
		{"No target", ledger.AssignTarget{}, ledger.BatchFilter{}, models.ErrValidation},
		{"Two targets", ledger.AssignTarget{EarmarkID: &youth.ID, BudgetID: &regatta.ID}, ledger.BatchFilter{}, models.ErrValidation},
		{"Invalid sphere", ledger.AssignTarget{EarmarkID: &youth.ID}, ledger.BatchFilter{Sphere: "OTHER"}, models.ErrValidation},
		{"Invalid type", ledger.AssignTarget{EarmarkID: &youth.ID}, ledger.BatchFilter{Type: "CHEQUE"}, models.ErrValidation},
		{"Earmark of other organization", ledger.AssignTarget{EarmarkID: &foreign.ID}, ledger.BatchFilter{}, models.ErrResourceNotFound},
		{"Unknown tag", ledger.AssignTarget{TagIDs: []uuid.UUID{uuid.New()}}, ledger.BatchFilter{}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.BatchAssign(ctx, org.ID, tt.target, tt.filter, false)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
