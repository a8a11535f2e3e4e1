package ledger

import (
	"context"

	"github.com/clubledger/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit log actions.
const (
	ActionVoucherCreate     = "voucher.create"
	ActionVoucherReverse    = "voucher.reverse"
	ActionVoucherUpdate     = "voucher.update"
	ActionVoucherDelete     = "voucher.delete"
	ActionAttachmentCreate  = "attachment.create"
	ActionAttachmentDelete  = "attachment.delete"
	ActionFiscalYearClose   = "fiscal_year.close"
	ActionFiscalYearReopen  = "fiscal_year.reopen"
	ActionBatchAssign       = "booking.batch_assign"
	ActionMarkPaid          = "member_payment.mark_paid"
	ActionUnmark            = "member_payment.unmark"
	ActionInvoiceCreate     = "invoice.create"
	ActionInvoicePayment    = "invoice.payment"
	ActionInvoicePaymentDel = "invoice.payment_delete"
)

// audit appends an entry to the audit log within the transaction.
func audit(ctx context.Context, tx *gorm.DB, organizationID uuid.UUID, action, entityType, entityID string, payload any) error {
	entry, err := models.NewAuditLog(organizationID, userFrom(ctx), action, entityType, entityID, payload)
	if err != nil {
		return err
	}

	return tx.Create(&entry).Error
}

// AuditFilter restricts the audit log listing.
type AuditFilter struct {
	EntityType string `form:"entityType"`
	EntityID   string `form:"entityId"`
	Action     string `form:"action"`
}

// AuditPage is a page of audit log entries, newest first.
type AuditPage struct {
	Entries []models.AuditLog `json:"entries"`
	Total   int64             `json:"total"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
}

// ListAuditLog returns the audit log of the organization.
func (l *Ledger) ListAuditLog(ctx context.Context, organizationID uuid.UUID, filter AuditFilter, page Page) (AuditPage, error) {
	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return AuditPage{}, err
	}

	q := db.Model(&models.AuditLog{}).Where("organization_id = ?", organizationID)
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}

	if filter.EntityID != "" {
		q = q.Where("entity_id = ?", filter.EntityID)
	}

	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		return AuditPage{}, err
	}

	entries := make([]models.AuditLog, 0)
	err = q.Order("created_at DESC, id DESC").Offset(page.offset()).Limit(page.limit()).Find(&entries).Error
	if err != nil {
		return AuditPage{}, err
	}

	return AuditPage{
		Entries: entries,
		Total:   total,
		Offset:  page.offset(),
		Limit:   page.limit(),
	}, nil
}
