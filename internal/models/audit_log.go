package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of one ledger mutation.
type AuditLog struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID      `json:"organizationId" gorm:"type:uuid;index"`
	UserID         *string        `json:"userId"`
	Action         string         `json:"action" gorm:"index"`
	EntityType     string         `json:"entityType" gorm:"index:idx_audit_entity"`
	EntityID       string         `json:"entityId" gorm:"index:idx_audit_entity"`
	Payload        datatypes.JSON `json:"payload"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// NewAuditLog returns an entry with the payload marshalled to JSON.
func NewAuditLog(organizationID uuid.UUID, userID *string, action, entityType, entityID string, payload any) (AuditLog, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return AuditLog{}, err
	}

	return AuditLog{
		OrganizationID: organizationID,
		UserID:         userID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		Payload:        datatypes.JSON(b),
	}, nil
}

func (a *AuditLog) AfterFind(_ *gorm.DB) (err error) {
	a.CreatedAt = a.CreatedAt.In(time.UTC)
	return
}

func (a *AuditLog) BeforeCreate(_ *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// BeforeUpdate refuses any change to existing entries.
func (a *AuditLog) BeforeUpdate(_ *gorm.DB) error {
	return ErrAuditLogAppendOnly
}

// BeforeDelete refuses deleting entries.
func (a *AuditLog) BeforeDelete(_ *gorm.DB) error {
	return ErrAuditLogAppendOnly
}

func (AuditLog) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[AuditLog](db, byOrganization(organizationID))
}
