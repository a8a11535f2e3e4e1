package models

import (
	"encoding/json"

	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a single debit or credit line of a voucher.
//
// Exactly one of Debit and Credit is set, and it is positive.
type Booking struct {
	DefaultModel
	VoucherID uuid.UUID    `json:"voucherId" gorm:"type:uuid;index"`
	Position  int          `json:"position"` // Order of the line within the voucher
	AccountID uuid.UUID    `json:"accountId" gorm:"type:uuid;index"`
	Account   Account      `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Debit     *types.Money `json:"debit" gorm:"check:booking_one_side,(debit IS NULL) <> (credit IS NULL)"`
	Credit    *types.Money `json:"credit"`
	Memo      string       `json:"memo"`
	TaxCode   string       `json:"taxCode"`
	EarmarkID *uuid.UUID   `json:"earmarkId" gorm:"type:uuid;index"`
	Earmark   *Earmark     `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	BudgetID  *uuid.UUID   `json:"budgetId" gorm:"type:uuid;index"`
	Budget    *Budget      `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Tags      []Tag        `json:"tags" gorm:"many2many:booking_tags;constraint:OnDelete:CASCADE"`
}

// BeforeSave trims string fields and normalizes optional references.
func (b *Booking) BeforeSave(_ *gorm.DB) error {
	trim(&b.Memo, &b.TaxCode)
	b.EarmarkID = nilIfZero(b.EarmarkID)
	b.BudgetID = nilIfZero(b.BudgetID)
	return nil
}

// Validate checks the shape of the line: exactly one side set with a positive amount.
func (b Booking) Validate() error {
	if b.Debit == nil && b.Credit == nil {
		return Validationf("a booking line needs either a debit or a credit amount")
	}

	if b.Debit != nil && b.Credit != nil {
		return Validationf("a booking line must not have both a debit and a credit amount")
	}

	if b.Amount() <= 0 {
		return Validationf("booking amounts must be positive, got %s", b.Amount())
	}

	return nil
}

// Amount returns the amount of the populated side.
func (b Booking) Amount() types.Money {
	if b.Debit != nil {
		return *b.Debit
	}
	if b.Credit != nil {
		return *b.Credit
	}
	return 0
}

// Signed returns the amount with the usage sign convention:
// credits are positive, debits negative.
func (b Booking) Signed() types.Money {
	if b.Debit != nil {
		return b.Debit.Neg()
	}
	return b.Amount()
}

// Mirror returns a copy of the booking with debit and credit swapped.
func (b Booking) Mirror() Booking {
	mirrored := Booking{
		Position:  b.Position,
		AccountID: b.AccountID,
		Debit:     b.Credit,
		Credit:    b.Debit,
		Memo:      b.Memo,
		TaxCode:   b.TaxCode,
		EarmarkID: b.EarmarkID,
		BudgetID:  b.BudgetID,
	}

	for _, t := range b.Tags {
		mirrored.Tags = append(mirrored.Tags, Tag{DefaultModel: DefaultModel{ID: t.ID}})
	}

	return mirrored
}

func (Booking) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Booking](db, byVoucherOrganization("bookings", organizationID))
}
