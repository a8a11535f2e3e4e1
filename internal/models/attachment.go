package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attachment is the metadata of a file attached to a voucher.
// The file itself is stored outside of the ledger.
type Attachment struct {
	DefaultModel
	VoucherID   uuid.UUID `json:"voucherId" gorm:"type:uuid;index"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storagePath"`
}

func (a *Attachment) BeforeSave(_ *gorm.DB) error {
	trim(&a.Filename, &a.MimeType, &a.StoragePath)

	if a.Filename == "" {
		return Validationf("the attachment filename must not be empty")
	}

	if a.Size < 0 {
		return Validationf("the attachment size must not be negative")
	}

	return nil
}

func (Attachment) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Attachment](db, byVoucherOrganization("attachments", organizationID))
}
