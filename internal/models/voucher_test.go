package models_test

import (
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
)

func (suite *TestSuiteStandard) TestVoucherBeforeSave() {
	tz := time.FixedZone("CET", 3600)

	voucher := models.Voucher{
		Date:        time.Date(2024, 1, 1, 0, 30, 0, 0, tz),
		Description: "  Membership fees  ",
	}

	err := voucher.BeforeSave(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal(time.UTC, voucher.Date.Location(), "Timezone for voucher date is not UTC")
	suite.Assert().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), voucher.Date, "the calendar day must be kept")
	suite.Assert().Equal(2024, voucher.Year)
	suite.Assert().Equal("Membership fees", voucher.Description)
}

func (suite *TestSuiteStandard) TestVoucherBeforeSaveNoDate() {
	voucher := models.Voucher{}
	suite.Assert().ErrorIs(voucher.BeforeSave(models.DB), models.ErrValidation)
}

func (suite *TestSuiteStandard) TestVoucherNumberUnique() {
	organization := suite.createTestOrganization(models.Organization{})
	suite.createTestVoucher(models.Voucher{OrganizationID: organization.ID, Number: 1})

	duplicate := models.Voucher{
		OrganizationID: organization.ID,
		Number:         1,
		Type:           models.VoucherJournal,
		Date:           time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrVoucherNumberNotUnique)
	suite.Assert().ErrorIs(err, models.ErrConflict)

	// The same number in another year is fine
	nextYear := models.Voucher{
		OrganizationID: organization.ID,
		Number:         1,
		Type:           models.VoucherJournal,
		Date:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Assert().Nil(models.DB.Create(&nextYear).Error)
}

func (suite *TestSuiteStandard) TestVoucherDeleteCascades() {
	organization := suite.createTestOrganization(models.Organization{})
	account := suite.createTestAccount(models.Account{OrganizationID: organization.ID})

	voucher := suite.createTestVoucher(models.Voucher{
		OrganizationID: organization.ID,
		Number:         1,
		Bookings: []models.Booking{
			{AccountID: account.ID, Debit: money("10")},
			{AccountID: account.ID, Credit: money("10")},
		},
		Attachments: []models.Attachment{
			{Filename: "receipt.pdf", MimeType: "application/pdf", Size: 1024},
		},
	})

	suite.Require().Nil(models.DB.Delete(&voucher).Error)

	var bookings, attachments int64
	models.DB.Model(&models.Booking{}).Where("voucher_id = ?", voucher.ID).Count(&bookings)
	models.DB.Model(&models.Attachment{}).Where("voucher_id = ?", voucher.ID).Count(&attachments)

	suite.Assert().Equal(int64(0), bookings, "bookings must be deleted with the voucher")
	suite.Assert().Equal(int64(0), attachments, "attachments must be deleted with the voucher")
}

func (suite *TestSuiteStandard) TestBookingOneSideCheck() {
	organization := suite.createTestOrganization(models.Organization{})
	account := suite.createTestAccount(models.Account{OrganizationID: organization.ID})
	voucher := suite.createTestVoucher(models.Voucher{OrganizationID: organization.ID, Number: 1})

	err := models.DB.Create(&models.Booking{
		VoucherID: voucher.ID,
		AccountID: account.ID,
		Debit:     money("1"),
		Credit:    money("1"),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrConstraint)
}

func (suite *TestSuiteStandard) TestBookingValidate() {
	tests := []struct {
		name    string
		booking models.Booking
		valid   bool
	}{
		{"Debit", models.Booking{Debit: money("1.50")}, true},
		{"Credit", models.Booking{Credit: money("0.01")}, true},
		{"Neither", models.Booking{}, false},
		{"Both", models.Booking{Debit: money("1"), Credit: money("1")}, false},
		{"Zero", models.Booking{Debit: money("0")}, false},
		{"Negative", models.Booking{Credit: money("-5")}, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.booking.Validate()
			if tt.valid {
				suite.Assert().Nil(err)
			} else {
				suite.Assert().ErrorIs(err, models.ErrValidation)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBookingMirror() {
	booking := models.Booking{
		Debit: money("42"),
		Memo:  "Hall rent",
		Tags:  []models.Tag{{Name: "Events"}},
	}

	mirrored := booking.Mirror()
	suite.Assert().Nil(mirrored.Debit)
	suite.Assert().Equal(types.Money(4200), *mirrored.Credit)
	suite.Assert().Equal(booking.Memo, mirrored.Memo)
	suite.Assert().Len(mirrored.Tags, 1)
	suite.Assert().Equal(types.Money(4200), booking.Signed().Neg())
	suite.Assert().Equal(types.Money(4200), mirrored.Signed())
}

func (suite *TestSuiteStandard) TestVoucherTotals() {
	voucher := models.Voucher{
		Bookings: []models.Booking{
			{Debit: money("60")},
			{Debit: money("40")},
			{Credit: money("100")},
		},
	}

	debit, credit := voucher.Totals()
	suite.Assert().Equal(types.Money(10000), debit)
	suite.Assert().Equal(debit, credit)
}
