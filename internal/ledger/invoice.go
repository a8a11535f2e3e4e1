package ledger

import (
	"context"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceInput is the input for creating a payable.
type InvoiceInput struct {
	Counterparty string        `json:"counterparty" example:"Sports equipment Ltd."`
	Amount       types.Money   `json:"amount" example:"250.00"`
	DueDate      time.Time     `json:"dueDate" example:"2024-04-30T00:00:00Z"`
	Sphere       models.Sphere `json:"sphere" example:"PURPOSE"`
	Category     string        `json:"category" example:"Equipment"`
	EarmarkID    *uuid.UUID    `json:"earmarkId,omitempty"`
	BudgetID     *uuid.UUID    `json:"budgetId,omitempty"`
}

// InvoiceFilter restricts invoice listings.
type InvoiceFilter struct {
	Status  models.InvoiceStatus `form:"status"`
	Overdue bool                 `form:"overdue"` // Only unpaid invoices due before today
}

type InvoicePage struct {
	Invoices []models.Invoice `json:"invoices"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

// InvoicePaymentInput is a (partial) payment of an invoice.
type InvoicePaymentInput struct {
	Amount    types.Money `json:"amount" example:"100.00"`
	Date      time.Time   `json:"date" example:"2024-04-12T00:00:00Z"`
	VoucherID *uuid.UUID  `json:"voucherId,omitempty"`
}

func loadInvoice(tx *gorm.DB, organizationID, id uuid.UUID) (models.Invoice, error) {
	var invoice models.Invoice
	err := tx.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_payments.date ASC, invoice_payments.created_at ASC")
		}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&invoice).Error

	return invoice, err
}

// CreateInvoice creates an open payable.
func (l *Ledger) CreateInvoice(ctx context.Context, organizationID uuid.UUID, in InvoiceInput) (models.Invoice, error) {
	if in.DueDate.IsZero() {
		return models.Invoice{}, models.Validationf("the due date must be set")
	}

	invoice := models.Invoice{
		OrganizationID: organizationID,
		Counterparty:   in.Counterparty,
		Amount:         in.Amount,
		DueDate:        in.DueDate,
		Status:         models.InvoiceOpen,
		Sphere:         in.Sphere,
		Category:       in.Category,
		EarmarkID:      in.EarmarkID,
		BudgetID:       in.BudgetID,
	}

	err := l.transaction(ctx, func(tx *gorm.DB) error {
		if _, err := organization(tx, organizationID); err != nil {
			return err
		}

		if in.EarmarkID != nil && *in.EarmarkID != uuid.Nil {
			if _, err := ownedBy[models.Earmark](tx, organizationID, *in.EarmarkID); err != nil {
				return err
			}
		}

		if in.BudgetID != nil && *in.BudgetID != uuid.Nil {
			if _, err := ownedBy[models.Budget](tx, organizationID, *in.BudgetID); err != nil {
				return err
			}
		}

		err := tx.Omit(clause.Associations).Create(&invoice).Error
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionInvoiceCreate, "invoice", invoice.ID.String(), invoice)
	})
	if err != nil {
		return models.Invoice{}, err
	}

	return l.GetInvoice(ctx, organizationID, invoice.ID)
}

// GetInvoice returns the invoice with its payments.
func (l *Ledger) GetInvoice(ctx context.Context, organizationID, id uuid.UUID) (models.Invoice, error) {
	return loadInvoice(l.db(ctx), organizationID, id)
}

// ListInvoices returns the invoices by due date, earliest first.
func (l *Ledger) ListInvoices(ctx context.Context, organizationID uuid.UUID, filter InvoiceFilter, page Page) (InvoicePage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return InvoicePage{}, models.Validationf("'%s' is not a valid invoice status", filter.Status)
	}

	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return InvoicePage{}, err
	}

	q := db.Model(&models.Invoice{}).Where("organization_id = ?", organizationID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.Overdue {
		q = q.Where("status <> ? AND due_date < ?", models.InvoicePaid, l.today())
	}

	q = q.Session(&gorm.Session{})

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		return InvoicePage{}, err
	}

	invoices := make([]models.Invoice, 0)
	err = q.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_payments.date ASC")
		}).
		Order("due_date ASC, created_at ASC").
		Offset(page.offset()).
		Limit(page.limit()).
		Find(&invoices).Error
	if err != nil {
		return InvoicePage{}, err
	}

	return InvoicePage{
		Invoices: invoices,
		Total:    total,
		Offset:   page.offset(),
		Limit:    page.limit(),
	}, nil
}

// settle updates the status of the invoice from its payments.
func settle(tx *gorm.DB, organizationID, id uuid.UUID) (models.Invoice, error) {
	invoice, err := loadInvoice(tx, organizationID, id)
	if err != nil {
		return models.Invoice{}, err
	}

	status := invoice.SettlementStatus()
	if status == invoice.Status {
		return invoice, nil
	}

	err = tx.Model(&models.Invoice{}).Where("id = ?", invoice.ID).UpdateColumn("status", status).Error
	if err != nil {
		return models.Invoice{}, err
	}

	invoice.Status = status
	return invoice, nil
}

// RecordInvoicePayment adds a payment to the invoice and updates its status.
func (l *Ledger) RecordInvoicePayment(ctx context.Context, organizationID, invoiceID uuid.UUID, in InvoicePaymentInput) (models.Invoice, error) {
	err := l.transaction(ctx, func(tx *gorm.DB) error {
		invoice, err := ownedBy[models.Invoice](tx, organizationID, invoiceID)
		if err != nil {
			return err
		}

		if in.VoucherID != nil && *in.VoucherID != uuid.Nil {
			if _, err := ownedBy[models.Voucher](tx, organizationID, *in.VoucherID); err != nil {
				return err
			}
		}

		payment := models.InvoicePayment{
			InvoiceID: invoice.ID,
			Amount:    in.Amount,
			Date:      in.Date,
			VoucherID: in.VoucherID,
		}

		err = tx.Omit(clause.Associations).Create(&payment).Error
		if err != nil {
			return err
		}

		settled, err := settle(tx, organizationID, invoice.ID)
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionInvoicePayment, "invoice_payment", payment.ID.String(), map[string]any{
			"payment": payment,
			"status":  settled.Status,
		})
	})
	if err != nil {
		return models.Invoice{}, err
	}

	return l.GetInvoice(ctx, organizationID, invoiceID)
}

// DeleteInvoicePayment removes the payment and updates the status of its invoice.
func (l *Ledger) DeleteInvoicePayment(ctx context.Context, organizationID, paymentID uuid.UUID) (models.Invoice, error) {
	var invoiceID uuid.UUID

	err := l.transaction(ctx, func(tx *gorm.DB) error {
		var payment models.InvoicePayment
		err := tx.
			Joins("JOIN invoices ON invoices.id = invoice_payments.invoice_id").
			Where("invoice_payments.id = ? AND invoices.organization_id = ?", paymentID, organizationID).
			First(&payment).Error
		if err != nil {
			return err
		}
		invoiceID = payment.InvoiceID

		err = tx.Delete(&payment).Error
		if err != nil {
			return err
		}

		settled, err := settle(tx, organizationID, payment.InvoiceID)
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionInvoicePaymentDel, "invoice_payment", payment.ID.String(), map[string]any{
			"payment": payment,
			"status":  settled.Status,
		})
	})
	if err != nil {
		return models.Invoice{}, err
	}

	return l.GetInvoice(ctx, organizationID, invoiceID)
}
