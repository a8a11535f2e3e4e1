package models

import (
	"encoding/json"
	"time"

	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceStatus is the settlement state of a payable.
//
// swagger:enum InvoiceStatus
type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "OPEN"
	InvoicePartial InvoiceStatus = "PARTIAL"
	InvoicePaid    InvoiceStatus = "PAID"
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoiceOpen || s == InvoicePartial || s == InvoicePaid
}

// Invoice is a payable of the organization.
type Invoice struct {
	DefaultModel
	OrganizationID uuid.UUID        `json:"organizationId" gorm:"type:uuid;index"`
	Organization   Organization     `json:"-"`
	Counterparty   string           `json:"counterparty"`
	Amount         types.Money      `json:"amount"`
	DueDate        time.Time        `json:"dueDate"`
	Status         InvoiceStatus    `json:"status"`
	Sphere         Sphere           `json:"sphere"`
	Category       string           `json:"category"`
	EarmarkID      *uuid.UUID       `json:"earmarkId" gorm:"type:uuid"`
	Earmark        *Earmark         `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	BudgetID       *uuid.UUID       `json:"budgetId" gorm:"type:uuid"`
	Budget         *Budget          `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Payments       []InvoicePayment `json:"payments" gorm:"constraint:OnDelete:CASCADE"`
}

func (i *Invoice) AfterFind(tx *gorm.DB) (err error) {
	err = i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.DueDate = i.DueDate.In(time.UTC)
	return
}

func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	trim(&i.Counterparty, &i.Category)
	i.EarmarkID = nilIfZero(i.EarmarkID)
	i.BudgetID = nilIfZero(i.BudgetID)

	if i.Status == "" {
		i.Status = InvoiceOpen
	}

	if !i.Status.Valid() {
		return Validationf("'%s' is not a valid invoice status", i.Status)
	}

	if !i.Sphere.Valid() {
		return Validationf("'%s' is not a valid sphere", i.Sphere)
	}

	if !i.Amount.IsPositive() {
		return Validationf("the invoice amount must be positive")
	}

	if !i.DueDate.IsZero() {
		i.DueDate = Date(i.DueDate)
	}

	return nil
}

// Paid returns the sum of all payments of the invoice.
// Payments must be preloaded.
func (i Invoice) Paid() (paid types.Money) {
	for _, p := range i.Payments {
		paid += p.Amount
	}
	return
}

// SettlementStatus derives the status from the payments made.
func (i Invoice) SettlementStatus() InvoiceStatus {
	paid := i.Paid()
	switch {
	case paid >= i.Amount:
		return InvoicePaid
	case paid > 0:
		return InvoicePartial
	default:
		return InvoiceOpen
	}
}

func (Invoice) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Invoice](db, byOrganization(organizationID))
}

// InvoicePayment is a (partial) payment of an invoice.
type InvoicePayment struct {
	DefaultModel
	InvoiceID uuid.UUID   `json:"invoiceId" gorm:"type:uuid;index"`
	Amount    types.Money `json:"amount"`
	Date      time.Time   `json:"date"`
	VoucherID *uuid.UUID  `json:"voucherId" gorm:"type:uuid"`
	Voucher   *Voucher    `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}

func (p *InvoicePayment) BeforeSave(_ *gorm.DB) error {
	p.VoucherID = nilIfZero(p.VoucherID)

	if !p.Amount.IsPositive() {
		return Validationf("payment amounts must be positive")
	}

	if p.Date.IsZero() {
		return Validationf("the payment date must be set")
	}

	p.Date = Date(p.Date)
	return nil
}

func (InvoicePayment) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[InvoicePayment](db, func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN invoices ON invoices.id = invoice_payments.invoice_id").
			Where("invoices.organization_id = ?", organizationID)
	})
}
