package ledger_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateVoucherBalance() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)

	_, err := suite.ledger.CreateVoucher(ctx, org.ID, ledger.VoucherInput{
		Date:  date(2024, 3, 1),
		Type:  models.VoucherReceipt,
		Lines: []ledger.BookingLine{debit(bank, "100.00"), credit(fees, "99.99")},
	})
	suite.Assert().ErrorIs(err, models.ErrValidation)

	var vouchers int64
	models.DB.Model(&models.Voucher{}).Count(&vouchers)
	suite.Assert().Equal(int64(0), vouchers, "an unbalanced voucher must not be persisted")
	suite.Assert().Equal(int64(0), suite.auditCount(org.ID, ledger.ActionVoucherCreate))

	voucher, err := suite.ledger.CreateVoucher(ctx, org.ID, ledger.VoucherInput{
		Date:        date(2024, 3, 1),
		Type:        models.VoucherReceipt,
		Description: "Membership fee",
		Lines:       []ledger.BookingLine{debit(bank, "100.00"), credit(fees, "60.00"), credit(fees, "40.00")},
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(1, voucher.Number)
	suite.Assert().Equal(2024, voucher.Year)
	suite.Require().Len(voucher.Bookings, 3)
	suite.Assert().Equal(types.MustParseMoney("60.00"), *voucher.Bookings[1].Credit, "bookings must keep the order of the lines")

	d, c := voucher.Totals()
	suite.Assert().Equal(d, c)
	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionVoucherCreate))
}

func (suite *TestSuiteStandard) TestCreateVoucherValidation() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	other := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	foreign := suite.createTestAccount(other.ID, "1200", models.AccountAsset)

	inactive := suite.createTestAccount(org.ID, "1900", models.AccountAsset)
	inactive, err := suite.ledger.UpdateAccount(ctx, org.ID, inactive.ID, ledger.AccountUpdate{Active: new(bool)})
	suite.Require().Nil(err)

	foreignEarmark := suite.createTestEarmark(other.ID, "YOUTH")

	tests := []struct {
		name string
		in   ledger.VoucherInput
		err  error
	}{
		{"No lines", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal}, models.ErrValidation},
		{"No date", ledger.VoucherInput{Type: models.VoucherJournal, Lines: []ledger.BookingLine{debit(bank, "1"), credit(fees, "1")}}, models.ErrValidation},
		{"Invalid type", ledger.VoucherInput{Date: date(2024, 1, 1), Type: "CHEQUE", Lines: []ledger.BookingLine{debit(bank, "1"), credit(fees, "1")}}, models.ErrValidation},
		{"Invalid sphere", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Sphere: "OTHER", Lines: []ledger.BookingLine{debit(bank, "1"), credit(fees, "1")}}, models.ErrValidation},
		{"Both sides", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{{AccountID: bank.ID, Debit: amount("1"), Credit: amount("1")}}}, models.ErrValidation},
		{"No side", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{{AccountID: bank.ID}}}, models.ErrValidation},
		{"Zero amount", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{debit(bank, "0"), credit(fees, "0")}}, models.ErrValidation},
		{"Negative amount", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{debit(bank, "-5"), credit(fees, "-5")}}, models.ErrValidation},
		{"Sum out of range", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{
			debit(bank, "92233720368547758.07"),
			debit(bank, "0.02"),
			credit(fees, "0.01"),
		}}, models.ErrValidation},
		{"Inactive account", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{debit(inactive, "5"), credit(fees, "5")}}, models.ErrValidation},
		{"Account of other organization", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{debit(foreign, "5"), credit(fees, "5")}}, models.ErrResourceNotFound},
		{"Earmark of other organization", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{
			{AccountID: bank.ID, Debit: amount("5"), EarmarkID: &foreignEarmark.ID},
			credit(fees, "5"),
		}}, models.ErrResourceNotFound},
		{"Unknown tag", ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{
			{AccountID: bank.ID, Debit: amount("5"), TagIDs: []uuid.UUID{uuid.New()}},
			credit(fees, "5"),
		}}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.CreateVoucher(ctx, org.ID, tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err = suite.ledger.CreateVoucher(ctx, uuid.New(), ledger.VoucherInput{Date: date(2024, 1, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{debit(bank, "1"), credit(fees, "1")}})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "unknown organizations must not be found")
}

func (suite *TestSuiteStandard) TestVoucherNumbering() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	other := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	otherBank := suite.createTestAccount(other.ID, "1200", models.AccountAsset)
	otherFees := suite.createTestAccount(other.ID, "4000", models.AccountIncome)

	for i := 1; i <= 3; i++ {
		v := suite.createTestVoucher(org.ID, date(2024, 2, i), "", debit(bank, "1"), credit(fees, "1"))
		suite.Assert().Equal(i, v.Number)
	}

	// Numbering is per organization
	v := suite.createTestVoucher(other.ID, date(2024, 2, 1), "", debit(otherBank, "1"), credit(otherFees, "1"))
	suite.Assert().Equal(1, v.Number)

	// Numbering is per year
	v = suite.createTestVoucher(org.ID, date(2023, 12, 31), "", debit(bank, "1"), credit(fees, "1"))
	suite.Assert().Equal(1, v.Number)

	// Deleting the highest number does not free it
	page, err := suite.ledger.ListVouchers(ctx, org.ID, ledger.VoucherFilter{Year: new(int)}, ledger.Page{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), page.Total)

	year := 2024
	page, err = suite.ledger.ListVouchers(ctx, org.ID, ledger.VoucherFilter{Year: &year}, ledger.Page{})
	suite.Require().Nil(err)
	suite.Require().Equal(3, page.Vouchers[0].Number, "the newest voucher must be listed first")
	suite.Require().Nil(suite.ledger.DeleteVoucher(ctx, org.ID, page.Vouchers[0].ID))

	v = suite.createTestVoucher(org.ID, date(2024, 2, 4), "", debit(bank, "1"), credit(fees, "1"))
	suite.Assert().Equal(4, v.Number)
}

func (suite *TestSuiteStandard) TestClosedYearBlocksMutations() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)

	v1 := suite.createTestVoucher(org.ID, date(2023, 5, 1), "V1", debit(bank, "10"), credit(fees, "10"))
	v2 := suite.createTestVoucher(org.ID, date(2023, 6, 1), "V2", debit(bank, "20"), credit(fees, "20"))

	_, err := suite.ledger.CloseYear(ctx, org.ID, 2023)
	suite.Require().Nil(err)

	err = suite.ledger.DeleteVoucher(ctx, org.ID, v1.ID)
	suite.Assert().ErrorIs(err, models.ErrLockedPeriod)

	var locked models.LockedPeriodError
	suite.Require().True(errors.As(err, &locked))
	suite.Assert().Equal(2023, locked.Year)
	suite.Assert().Equal(org.ID, locked.OrganizationID)

	_, err = suite.ledger.CreateVoucher(ctx, org.ID, ledger.VoucherInput{Date: date(2023, 7, 1), Type: models.VoucherJournal, Lines: []ledger.BookingLine{debit(bank, "1"), credit(fees, "1")}})
	suite.Assert().ErrorIs(err, models.ErrLockedPeriod)

	description := "changed"
	_, err = suite.ledger.UpdateVoucher(ctx, org.ID, v2.ID, ledger.VoucherUpdate{Description: &description})
	suite.Assert().ErrorIs(err, models.ErrLockedPeriod)

	_, err = suite.ledger.AddAttachment(ctx, org.ID, v2.ID, ledger.AttachmentInput{Filename: "receipt.pdf"})
	suite.Assert().ErrorIs(err, models.ErrLockedPeriod)

	_, err = suite.ledger.ReopenYear(ctx, org.ID, 2023)
	suite.Require().Nil(err)

	suite.Require().Nil(suite.ledger.DeleteVoucher(ctx, org.ID, v1.ID))

	v2, err = suite.ledger.GetVoucher(ctx, org.ID, v2.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(2, v2.Number, "numbers are never changed by deleting other vouchers")

	_, err = suite.ledger.GetVoucher(ctx, org.ID, v1.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionVoucherDelete), "failed mutations must not be audited")
}

func (suite *TestSuiteStandard) TestReverseVoucher() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	earmark := suite.createTestEarmark(org.ID, "YOUTH")
	tag := suite.createTestTag(org.ID, "Donation")

	original := suite.createTestVoucher(org.ID, date(2023, 11, 3), "Donation Smith",
		debit(bank, "100"),
		ledger.BookingLine{AccountID: fees.ID, Credit: amount("100"), EarmarkID: &earmark.ID, TagIDs: []uuid.UUID{tag.ID}},
	)

	// The year of the original may be closed
	_, err := suite.ledger.CloseYear(ctx, org.ID, 2023)
	suite.Require().Nil(err)

	reversal, err := suite.ledger.ReverseVoucher(ctx, org.ID, original.ID)
	suite.Require().Nil(err)

	suite.Assert().True(date(2024, 6, 15).Equal(reversal.Date), "reversals are dated today")
	suite.Assert().Equal(1, reversal.Number)
	suite.Assert().Equal("Reversal of #2023-1: Donation Smith", reversal.Description)
	suite.Require().NotNil(reversal.ReversalOfID)
	suite.Assert().Equal(original.ID, *reversal.ReversalOfID)

	suite.Require().Len(reversal.Bookings, 2)
	suite.Assert().Nil(reversal.Bookings[0].Debit)
	suite.Assert().Equal(types.MustParseMoney("100"), *reversal.Bookings[0].Credit)
	suite.Assert().Equal(bank.ID, reversal.Bookings[0].AccountID)
	suite.Assert().Nil(reversal.Bookings[1].Credit)
	suite.Assert().Equal(types.MustParseMoney("100"), *reversal.Bookings[1].Debit)
	suite.Assert().Equal(&earmark.ID, reversal.Bookings[1].EarmarkID)
	suite.Require().Len(reversal.Bookings[1].Tags, 1)
	suite.Assert().Equal(tag.ID, reversal.Bookings[1].Tags[0].ID)

	usage, err := suite.ledger.EarmarkUsage(ctx, org.ID, earmark.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.Money(0), usage.Usage, "original and reversal must cancel out")

	_, err = suite.ledger.ReverseVoucher(ctx, org.ID, original.ID)
	suite.Assert().ErrorIs(err, models.ErrValidation, "vouchers can only be reversed once")

	// The reversal needs the current year to be open
	other := suite.createTestVoucher(org.ID, date(2024, 1, 10), "", debit(bank, "5"), credit(fees, "5"))
	_, err = suite.ledger.CloseYear(ctx, org.ID, 2024)
	suite.Require().Nil(err)

	_, err = suite.ledger.ReverseVoucher(ctx, org.ID, other.ID)
	suite.Assert().ErrorIs(err, models.ErrLockedPeriod)
}

func (suite *TestSuiteStandard) TestReverseVoucherInactiveAccount() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)

	original := suite.createTestVoucher(org.ID, date(2024, 2, 1), "Course fee", debit(bank, "30"), credit(fees, "30"))

	_, err := suite.ledger.UpdateAccount(ctx, org.ID, fees.ID, ledger.AccountUpdate{Active: new(bool)})
	suite.Require().Nil(err)

	reversal, err := suite.ledger.ReverseVoucher(ctx, org.ID, original.ID)
	suite.Require().Nil(err)
	suite.Require().Len(reversal.Bookings, 2)
	suite.Assert().Equal(fees.ID, reversal.Bookings[1].AccountID)
	suite.Assert().Equal(types.MustParseMoney("30"), *reversal.Bookings[1].Debit)

	// New vouchers still reject the inactive account
	_, err = suite.ledger.CreateVoucher(ctx, org.ID, ledger.VoucherInput{
		Date:  date(2024, 2, 2),
		Type:  models.VoucherReceipt,
		Lines: []ledger.BookingLine{debit(bank, "30"), credit(fees, "30")},
	})
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestUpdateVoucher() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)

	suite.createTestVoucher(org.ID, date(2025, 1, 2), "", debit(bank, "1"), credit(fees, "1"))
	voucher := suite.createTestVoucher(org.ID, date(2024, 12, 30), "Fees", debit(bank, "10"), credit(fees, "10"))

	description := "Fees December"
	updated, err := suite.ledger.UpdateVoucher(ctx, org.ID, voucher.ID, ledger.VoucherUpdate{
		Description: &description,
		Lines:       []ledger.BookingLine{debit(bank, "12"), credit(fees, "12")},
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("Fees December", updated.Description)
	suite.Assert().Equal(1, updated.Number)
	suite.Require().Len(updated.Bookings, 2)
	suite.Assert().Equal(types.MustParseMoney("12"), *updated.Bookings[0].Debit)

	_, err = suite.ledger.UpdateVoucher(ctx, org.ID, voucher.ID, ledger.VoucherUpdate{
		Lines: []ledger.BookingLine{debit(bank, "12"), credit(fees, "11")},
	})
	suite.Assert().ErrorIs(err, models.ErrValidation)

	// Moving the voucher to another year assigns the next number of that year
	moved := date(2025, 1, 5)
	updated, err = suite.ledger.UpdateVoucher(ctx, org.ID, voucher.ID, ledger.VoucherUpdate{Date: &moved})
	suite.Require().Nil(err)
	suite.Assert().Equal(2025, updated.Year)
	suite.Assert().Equal(2, updated.Number)
	suite.Assert().Len(updated.Bookings, 2, "bookings must be kept when no lines are given")

	// The target year must be open
	_, err = suite.ledger.CloseYear(ctx, org.ID, 2023)
	suite.Require().Nil(err)
	back := date(2023, 12, 1)
	_, err = suite.ledger.UpdateVoucher(ctx, org.ID, voucher.ID, ledger.VoucherUpdate{Date: &back})
	suite.Assert().ErrorIs(err, models.ErrLockedPeriod)

	suite.Assert().Equal(int64(2), suite.auditCount(org.ID, ledger.ActionVoucherUpdate))

	_, err = suite.ledger.UpdateVoucher(ctx, org.ID, uuid.New(), ledger.VoucherUpdate{Description: &description})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestListVouchers() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	cash := suite.createTestAccount(org.ID, "1000", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	tag := suite.createTestTag(org.ID, "Regatta")

	suite.createTestVoucher(org.ID, date(2024, 1, 5), "Membership fee Jane", debit(bank, "10"), credit(fees, "10"))
	suite.createTestVoucher(org.ID, date(2024, 2, 5), "Hall rent 100%", debit(cash, "50"), credit(fees, "50"))
	suite.createTestVoucher(org.ID, date(2024, 3, 5), "Entry fees",
		ledger.BookingLine{AccountID: bank.ID, Debit: amount("30"), Memo: "Spring regatta", TagIDs: []uuid.UUID{tag.ID}},
		credit(fees, "30"),
	)

	from := date(2024, 2, 1)
	until := date(2024, 3, 5)
	tests := []struct {
		name   string
		filter ledger.VoucherFilter
		total  int64
	}{
		{"All", ledger.VoucherFilter{}, 3},
		{"Search description", ledger.VoucherFilter{Search: "JANE"}, 1},
		{"Search memo", ledger.VoucherFilter{Search: "regatta"}, 1},
		{"Search escapes wildcards", ledger.VoucherFilter{Search: "100%"}, 1},
		{"Search percent only", ledger.VoucherFilter{Search: "%"}, 1},
		{"Date range", ledger.VoucherFilter{From: &from, Until: &until}, 2},
		{"Account", ledger.VoucherFilter{AccountID: &cash.ID}, 1},
		{"Tag", ledger.VoucherFilter{TagID: &tag.ID}, 1},
		{"Type", ledger.VoucherFilter{Type: models.VoucherJournal}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			page, err := suite.ledger.ListVouchers(ctx, org.ID, tt.filter, ledger.Page{})
			require.Nil(t, err)
			assert.Equal(t, tt.total, page.Total)
			assert.Len(t, page.Vouchers, int(tt.total))
		})
	}

	page, err := suite.ledger.ListVouchers(ctx, org.ID, ledger.VoucherFilter{}, ledger.Page{Offset: 1, Limit: 1})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), page.Total)
	suite.Require().Len(page.Vouchers, 1)
	suite.Assert().Equal("Hall rent 100%", page.Vouchers[0].Description)

	_, err = suite.ledger.ListVouchers(ctx, org.ID, ledger.VoucherFilter{Sphere: "NONE"}, ledger.Page{})
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestAttachments() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	voucher := suite.createTestVoucher(org.ID, date(2024, 1, 5), "", debit(bank, "10"), credit(fees, "10"))

	attachment, err := suite.ledger.AddAttachment(ctx, org.ID, voucher.ID, ledger.AttachmentInput{
		Filename:    "receipt.pdf",
		MimeType:    "application/pdf",
		Size:        2048,
		StoragePath: "2024/01/receipt.pdf",
	})
	suite.Require().Nil(err)

	voucher, err = suite.ledger.GetVoucher(ctx, org.ID, voucher.ID)
	suite.Require().Nil(err)
	suite.Require().Len(voucher.Attachments, 1)
	suite.Assert().Equal("receipt.pdf", voucher.Attachments[0].Filename)

	other := suite.createTestOrganization()
	suite.Assert().ErrorIs(suite.ledger.DeleteAttachment(ctx, other.ID, attachment.ID), models.ErrResourceNotFound)

	suite.Require().Nil(suite.ledger.DeleteAttachment(ctx, org.ID, attachment.ID))
	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionAttachmentCreate))
	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionAttachmentDelete))
}

func (suite *TestSuiteStandard) TestAuditLog() {
	ctx := ledger.WithUser(context.Background(), "treasurer@example.com")
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)

	voucher, err := suite.ledger.CreateVoucher(ctx, org.ID, ledger.VoucherInput{
		Date:  date(2024, 1, 5),
		Type:  models.VoucherReceipt,
		Lines: []ledger.BookingLine{debit(bank, "10"), credit(fees, "10")},
	})
	suite.Require().Nil(err)
	suite.Require().Nil(suite.ledger.DeleteVoucher(ctx, org.ID, voucher.ID))

	page, err := suite.ledger.ListAuditLog(ctx, org.ID, ledger.AuditFilter{EntityID: voucher.ID.String()}, ledger.Page{})
	suite.Require().Nil(err)
	suite.Require().Equal(int64(2), page.Total)

	for _, entry := range page.Entries {
		suite.Require().NotNil(entry.UserID)
		suite.Assert().Equal("treasurer@example.com", *entry.UserID)
		suite.Assert().Equal("voucher", entry.EntityType)
		suite.Assert().True(strings.Contains(string(entry.Payload), voucher.ID.String()))
	}

	page, err = suite.ledger.ListAuditLog(ctx, org.ID, ledger.AuditFilter{Action: ledger.ActionVoucherDelete}, ledger.Page{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), page.Total)
}
