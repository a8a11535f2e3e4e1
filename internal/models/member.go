package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is a member of the organization paying a recurring fee.
type Member struct {
	DefaultModel
	OrganizationID uuid.UUID      `json:"organizationId" gorm:"type:uuid;uniqueIndex:idx_member_number"`
	Organization   Organization   `json:"-"`
	Name           string         `json:"name"`
	Number         string         `json:"number" gorm:"uniqueIndex:idx_member_number"`
	JoinDate       time.Time      `json:"joinDate"`
	ExitDate       *time.Time     `json:"exitDate"`
	Interval       types.Interval `json:"interval"`
	Fee            types.Money    `json:"fee"`
}

func (m *Member) AfterFind(tx *gorm.DB) (err error) {
	err = m.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	m.JoinDate = m.JoinDate.In(time.UTC)
	if m.ExitDate != nil {
		exit := m.ExitDate.In(time.UTC)
		m.ExitDate = &exit
	}
	return
}

func (m *Member) BeforeSave(_ *gorm.DB) error {
	trim(&m.Name, &m.Number)

	if m.Name == "" {
		return Validationf("the member name must not be empty")
	}

	if m.Number == "" {
		return Validationf("the member number must not be empty")
	}

	if !m.Interval.Valid() {
		return Validationf("'%s' is not a valid billing interval", m.Interval)
	}

	if m.JoinDate.IsZero() {
		return Validationf("the join date must be set")
	}
	m.JoinDate = Date(m.JoinDate)

	if m.ExitDate != nil {
		exit := Date(*m.ExitDate)
		if exit.Before(m.JoinDate) {
			return Validationf("the exit date must not be before the join date")
		}
		m.ExitDate = &exit
	}

	if m.Fee < 0 {
		return Validationf("the fee must not be negative")
	}

	return nil
}

// DuePeriods returns all billing periods from the one containing the join date
// up to the one containing today or the exit date, whichever is earlier.
func (m Member) DuePeriods(today time.Time) []types.Period {
	until := today
	if m.ExitDate != nil && m.ExitDate.Before(until) {
		until = *m.ExitDate
	}

	if m.JoinDate.After(until) {
		return []types.Period{}
	}

	return types.PeriodsBetween(types.PeriodOf(m.Interval, m.JoinDate), types.PeriodOf(m.Interval, until))
}

// ActiveIn reports whether the membership overlaps the period.
func (m Member) ActiveIn(p types.Period) bool {
	if !m.JoinDate.Before(p.End()) {
		return false
	}

	return m.ExitDate == nil || !m.ExitDate.Before(p.Start())
}

func (Member) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Member](db, byOrganization(organizationID))
}

// MemberPayment records that a member paid the fee for one period.
type MemberPayment struct {
	DefaultModel
	MemberID  uuid.UUID      `json:"memberId" gorm:"type:uuid;uniqueIndex:idx_member_period"`
	Member    Member         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PeriodKey string         `json:"periodKey" gorm:"uniqueIndex:idx_member_period"`
	Interval  types.Interval `json:"interval"`
	Amount    types.Money    `json:"amount"`
	VoucherID *uuid.UUID     `json:"voucherId" gorm:"type:uuid;index"`
	Voucher   *Voucher       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Verified  bool           `json:"verified"`
	PaidAt    time.Time      `json:"paidAt"`
}

func (p *MemberPayment) AfterFind(tx *gorm.DB) (err error) {
	err = p.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	p.PaidAt = p.PaidAt.In(time.UTC)
	return
}

func (p *MemberPayment) BeforeSave(_ *gorm.DB) error {
	p.VoucherID = nilIfZero(p.VoucherID)

	_, err := types.ParsePeriodKeyFor(p.Interval, p.PeriodKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if p.Amount < 0 {
		return Validationf("the payment amount must not be negative")
	}

	return nil
}

func (MemberPayment) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[MemberPayment](db, func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN members ON members.id = member_payments.member_id").
			Where("members.organization_id = ?", organizationID)
	})
}
