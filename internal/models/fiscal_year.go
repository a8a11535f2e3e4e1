package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FiscalYear is the lock state of one year of an organization.
//
// A year without a row is open.
type FiscalYear struct {
	OrganizationID uuid.UUID  `json:"organizationId" gorm:"type:uuid;primaryKey"`
	Year           int        `json:"year" gorm:"primaryKey;autoIncrement:false"`
	Closed         bool       `json:"closed"`
	ClosedAt       *time.Time `json:"closedAt"`
	Timestamps
}

func (y *FiscalYear) AfterFind(_ *gorm.DB) (err error) {
	y.Timestamps.utc()

	if y.ClosedAt != nil {
		closedAt := y.ClosedAt.In(time.UTC)
		y.ClosedAt = &closedAt
	}
	return
}

// IsClosed reports whether the year of the organization is closed.
func IsClosed(db *gorm.DB, organizationID uuid.UUID, year int) (bool, error) {
	var count int64
	err := db.Model(&FiscalYear{}).
		Where("organization_id = ? AND year = ? AND closed = ?", organizationID, year, true).
		Count(&count).Error

	return count > 0, err
}

func (FiscalYear) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[FiscalYear](db, byOrganization(organizationID))
}
