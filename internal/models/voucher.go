package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoucherType is the kind of document a voucher represents.
//
// swagger:enum VoucherType
type VoucherType string

const (
	VoucherReceipt VoucherType = "RECEIPT"
	VoucherInvoice VoucherType = "INVOICE"
	VoucherJournal VoucherType = "JOURNAL"
)

func (t VoucherType) Valid() bool {
	return t == VoucherReceipt || t == VoucherInvoice || t == VoucherJournal
}

// Sphere is the top-level categorization of a voucher for reporting.
//
// swagger:enum Sphere
type Sphere string

const (
	SphereIdeal    Sphere = "IDEAL"
	SpherePurpose  Sphere = "PURPOSE"
	SphereAsset    Sphere = "ASSET"
	SphereBusiness Sphere = "BUSINESS"
)

// Valid reports whether the sphere is known. The empty sphere is valid.
func (s Sphere) Valid() bool {
	switch s {
	case "", SphereIdeal, SpherePurpose, SphereAsset, SphereBusiness:
		return true
	}
	return false
}

// PaymentMethod is how a voucher was settled.
//
// swagger:enum PaymentMethod
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentBank PaymentMethod = "BANK"
)

// Valid reports whether the payment method is known. The empty method is valid.
func (p PaymentMethod) Valid() bool {
	return p == "" || p == PaymentCash || p == PaymentBank
}

// Voucher is a dated financial document grouping one or more bookings.
type Voucher struct {
	DefaultModel
	OrganizationID uuid.UUID     `json:"organizationId" gorm:"type:uuid;uniqueIndex:idx_voucher_number,priority:1;index:idx_voucher_order,priority:1"`
	Organization   Organization  `json:"-"`
	Year           int           `json:"year" gorm:"uniqueIndex:idx_voucher_number,priority:2"` // Year of Date, the scope of Number
	Number         int           `json:"number" gorm:"uniqueIndex:idx_voucher_number,priority:3"`
	Date           time.Time     `json:"date" gorm:"index:idx_voucher_order,priority:2"`
	Type           VoucherType   `json:"type"`
	Description    string        `json:"description"`
	Counterparty   string        `json:"counterparty"`
	Sphere         Sphere        `json:"sphere"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	ReversalOfID   *uuid.UUID    `json:"reversalOfId" gorm:"type:uuid"`
	ReversalOf     *Voucher      `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Bookings       []Booking     `json:"bookings" gorm:"constraint:OnDelete:CASCADE"`
	Attachments    []Attachment  `json:"attachments" gorm:"constraint:OnDelete:CASCADE"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (v *Voucher) AfterFind(tx *gorm.DB) (err error) {
	err = v.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	v.Date = v.Date.In(time.UTC)
	return
}

// BeforeSave
//   - normalizes the date to the calendar day in UTC
//   - derives the numbering year from the date
//   - trims whitespace from string fields
func (v *Voucher) BeforeSave(_ *gorm.DB) error {
	trim(&v.Description, &v.Counterparty)
	v.ReversalOfID = nilIfZero(v.ReversalOfID)

	if v.Date.IsZero() {
		return Validationf("the voucher date must be set")
	}

	v.Date = Date(v.Date)
	v.Year = v.Date.Year()
	return nil
}

// Reference returns the human readable voucher reference, e.g. "2024-17".
func (v Voucher) Reference() string {
	return fmt.Sprintf("%d-%d", v.Year, v.Number)
}

// Totals returns the debit and credit sums over the voucher's bookings.
func (v Voucher) Totals() (debit, credit types.Money) {
	for _, b := range v.Bookings {
		if b.Debit != nil {
			debit += *b.Debit
		}
		if b.Credit != nil {
			credit += *b.Credit
		}
	}
	return
}

func (Voucher) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Voucher](db, byOrganization(organizationID))
}

// VoucherSequence holds the highest voucher number ever assigned for
// an organization and year.
//
// Deleting the voucher with the highest number must not free that number,
// so the next number is derived from both this and the existing vouchers.
type VoucherSequence struct {
	OrganizationID uuid.UUID `json:"organizationId" gorm:"type:uuid;primaryKey"`
	Year           int       `json:"year" gorm:"primaryKey;autoIncrement:false"`
	LastNumber     int       `json:"lastNumber"`
	Timestamps
}
