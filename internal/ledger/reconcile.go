package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxSuggestions is the maximum number of vouchers SuggestVouchers returns.
const MaxSuggestions = 10

// MemberState is the payment state of a member.
//
// swagger:enum MemberState
type MemberState string

const (
	MemberOK      MemberState = "OK"
	MemberOverdue MemberState = "OVERDUE"
)

// MemberStatus is the payment state of a member as of today.
type MemberStatus struct {
	MemberID       uuid.UUID   `json:"memberId"`
	State          MemberState `json:"state" example:"OVERDUE"`
	OverdueCount   int         `json:"overdueCount" example:"2"`
	OverduePeriods []string    `json:"overduePeriods" example:"2024-02,2024-03"`
	LastPaidPeriod string      `json:"lastPaidPeriod,omitempty" example:"2024-01"`
	LastPaidAt     *time.Time  `json:"lastPaidAt,omitempty"`
	NextDue        *time.Time  `json:"nextDue,omitempty"` // Start of the first unpaid period. Not set for members that left and paid everything
}

// payments returns the payments of the member keyed by period key.
func payments(tx *gorm.DB, memberID uuid.UUID) (map[string]models.MemberPayment, error) {
	var records []models.MemberPayment
	err := tx.Where("member_id = ?", memberID).Find(&records).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]models.MemberPayment, len(records))
	for _, r := range records {
		result[r.PeriodKey] = r
	}
	return result, nil
}

// MemberStatus computes which due periods of the member are unpaid.
func (l *Ledger) MemberStatus(ctx context.Context, organizationID, memberID uuid.UUID) (MemberStatus, error) {
	db := l.db(ctx)
	member, err := ownedBy[models.Member](db, organizationID, memberID)
	if err != nil {
		return MemberStatus{}, err
	}

	paid, err := payments(db, member.ID)
	if err != nil {
		return MemberStatus{}, err
	}

	status := MemberStatus{
		MemberID:       member.ID,
		State:          MemberOK,
		OverduePeriods: make([]string, 0),
	}

	var latest types.Period
	for key, p := range paid {
		period, err := types.ParsePeriodKey(key)
		if err != nil {
			continue
		}

		if latest.IsZero() || period.Start().After(latest.Start()) {
			latest = period
			paidAt := p.PaidAt
			status.LastPaidPeriod = key
			status.LastPaidAt = &paidAt
		}
	}

	due := member.DuePeriods(l.today())
	for _, period := range due {
		if _, ok := paid[period.Key()]; ok {
			continue
		}

		status.OverduePeriods = append(status.OverduePeriods, period.Key())
		if status.NextDue == nil {
			start := period.Start()
			status.NextDue = &start
		}
	}

	status.OverdueCount = len(status.OverduePeriods)
	if status.OverdueCount > 0 {
		status.State = MemberOverdue
	}

	if status.NextDue == nil {
		next := types.PeriodOf(member.Interval, member.JoinDate)
		if len(due) > 0 {
			next = due[len(due)-1].Next()
		}

		if member.ActiveIn(next) {
			start := next.Start()
			status.NextDue = &start
		}
	}

	return status, nil
}

// DueQuery selects the periods listed by ListDue.
type DueQuery struct {
	Interval types.Interval `form:"interval" json:"interval" example:"MONTHLY"`
	From     string         `form:"from" json:"from,omitempty" example:"2024-01"` // First period key. Without it, all periods due until today are listed
	To       string         `form:"to" json:"to,omitempty" example:"2024-03"`     // Last period key, defaults to From
	Search   string         `form:"search" json:"search,omitempty"`               // Glob on member name and number
}

// DueEntry is the fee of one member for one period.
type DueEntry struct {
	MemberID     uuid.UUID             `json:"memberId"`
	MemberName   string                `json:"memberName"`
	MemberNumber string                `json:"memberNumber"`
	PeriodKey    string                `json:"periodKey" example:"2024-03"`
	PeriodStart  time.Time             `json:"periodStart"`
	Due          types.Money           `json:"due" example:"10.00"`
	Paid         bool                  `json:"paid"`
	Payment      *models.MemberPayment `json:"payment,omitempty"`
}

// ListDue lists the fee of every matching member for each period of the query.
//
// Only members with the interval of the query whose membership overlaps a
// period are listed for that period.
func (l *Ledger) ListDue(ctx context.Context, organizationID uuid.UUID, query DueQuery) ([]DueEntry, error) {
	if !query.Interval.Valid() {
		return nil, fmt.Errorf("%w: %w", models.ErrValidation, types.ErrIntervalInvalid)
	}

	var periods []types.Period
	if query.From != "" {
		from, err := types.ParsePeriodKeyFor(query.Interval, query.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}

		to := from
		if query.To != "" {
			to, err = types.ParsePeriodKeyFor(query.Interval, query.To)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", models.ErrValidation, err)
			}
		}

		if to.Before(from) {
			return nil, models.Validationf("the period range must not end before it starts")
		}
		periods = types.PeriodsBetween(from, to)
	}

	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return nil, err
	}

	var members []models.Member
	err := db.
		Where(&models.Member{OrganizationID: organizationID, Interval: query.Interval}).
		Order("name ASC, number ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	var pattern string
	if query.Search != "" {
		pattern = searchPattern(query.Search)
	}

	today := l.today()
	entries := make([]DueEntry, 0)
	for _, m := range members {
		if pattern != "" && !matches(pattern, m.Name, m.Number) {
			continue
		}

		paid, err := payments(db, m.ID)
		if err != nil {
			return nil, err
		}

		memberPeriods := periods
		if memberPeriods == nil {
			memberPeriods = m.DuePeriods(today)
		}

		for _, period := range memberPeriods {
			if !m.ActiveIn(period) {
				continue
			}

			entry := DueEntry{
				MemberID:     m.ID,
				MemberName:   m.Name,
				MemberNumber: m.Number,
				PeriodKey:    period.Key(),
				PeriodStart:  period.Start(),
				Due:          m.Fee,
			}

			if p, ok := paid[period.Key()]; ok {
				entry.Paid = true
				entry.Payment = &p
			}

			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// Suggestion is a voucher that may be the payment of a member's fee.
type Suggestion struct {
	VoucherID     uuid.UUID   `json:"voucherId"`
	Reference     string      `json:"reference" example:"2024-17"`
	Date          time.Time   `json:"date"`
	Description   string      `json:"description"`
	Counterparty  string      `json:"counterparty"`
	Gross         types.Money `json:"gross" example:"10.00"` // Sum of the debits of the voucher
	NameScore     int         `json:"nameScore" example:"2"`
	AmountScore   int         `json:"amountScore" example:"2"`
	Score         int         `json:"score" example:"4"`
	LinkedPeriods []string    `json:"linkedPeriods"` // Periods already marked paid with the voucher

	number int
}

// SuggestVouchers ranks vouchers that may be the payment of the member for the period.
//
// Vouchers from LookbackDays before the start of the period until today are
// considered. They score for mentioning the name in description or counterparty
// and for a gross amount equal to the amount. Only vouchers with a positive score
// are returned, best first. Nothing is changed.
func (l *Ledger) SuggestVouchers(ctx context.Context, organizationID uuid.UUID, memberName string, amount types.Money, periodKey string) ([]Suggestion, error) {
	period, err := types.ParsePeriodKey(periodKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrValidation, err)
	}

	if amount < 0 {
		return nil, models.Validationf("the amount must not be negative")
	}

	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return nil, err
	}

	from := period.Start().AddDate(0, 0, -l.LookbackDays)
	until := l.today().AddDate(0, 0, 1)

	suggestions := make([]Suggestion, 0)
	if !from.Before(until) {
		return suggestions, nil
	}

	var vouchers []models.Voucher
	err = db.
		Preload("Bookings").
		Where("organization_id = ? AND date >= ? AND date < ?", organizationID, from, until).
		Find(&vouchers).Error
	if err != nil {
		return nil, err
	}

	for _, v := range vouchers {
		gross, _ := v.Totals()
		s := Suggestion{
			VoucherID:     v.ID,
			Reference:     v.Reference(),
			Date:          v.Date,
			Description:   v.Description,
			Counterparty:  v.Counterparty,
			Gross:         gross,
			NameScore:     nameScore(memberName, v.Description, v.Counterparty),
			LinkedPeriods: make([]string, 0),
			number:        v.Number,
		}

		if amount > 0 && gross == amount {
			s.AmountScore = 2
		}

		s.Score = s.NameScore + s.AmountScore
		if s.Score > 0 {
			suggestions = append(suggestions, s)
		}
	}

	slices.SortFunc(suggestions, func(a, b Suggestion) int {
		switch {
		case a.Score != b.Score:
			return b.Score - a.Score
		case !a.Date.Equal(b.Date):
			return b.Date.Compare(a.Date)
		default:
			return b.number - a.number
		}
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	if len(suggestions) == 0 {
		return suggestions, nil
	}

	ids := make([]uuid.UUID, 0, len(suggestions))
	for _, s := range suggestions {
		ids = append(ids, s.VoucherID)
	}

	var linked []models.MemberPayment
	err = db.
		Joins("JOIN members ON members.id = member_payments.member_id").
		Where("members.organization_id = ? AND member_payments.voucher_id IN ?", organizationID, ids).
		Order("member_payments.period_key ASC").
		Find(&linked).Error
	if err != nil {
		return nil, err
	}

	for i := range suggestions {
		for _, p := range linked {
			if p.VoucherID != nil && *p.VoucherID == suggestions[i].VoucherID {
				suggestions[i].LinkedPeriods = append(suggestions[i].LinkedPeriods, p.PeriodKey)
			}
		}
	}

	return suggestions, nil
}

// MarkPaidInput confirms the payment of a member's fee for one period.
type MarkPaidInput struct {
	MemberID  uuid.UUID      `json:"memberId"`
	PeriodKey string         `json:"periodKey" example:"2024-03"`
	Interval  types.Interval `json:"interval,omitempty" example:"MONTHLY"` // Defaults to the interval of the member
	Amount    *types.Money   `json:"amount,omitempty" example:"10.00"`     // Defaults to the fee of the member
	VoucherID *uuid.UUID     `json:"voucherId,omitempty"`
	Verified  bool           `json:"verified"`
	PaidAt    *time.Time     `json:"paidAt,omitempty"` // Defaults to now
}

// PaymentRecord is a member payment with the reference of its voucher.
type PaymentRecord struct {
	models.MemberPayment
	VoucherReference string      `json:"voucherReference,omitempty" example:"2024-17"`
	Discrepancy      types.Money `json:"discrepancy" example:"0.00"` // Amount paid minus the fee of the member
}

func record(p models.MemberPayment, member models.Member) PaymentRecord {
	r := PaymentRecord{
		MemberPayment: p,
		Discrepancy:   p.Amount - member.Fee,
	}

	if p.Voucher != nil {
		r.VoucherReference = p.Voucher.Reference()
	}
	return r
}

// MarkPaid records the payment of the period. If the period is already marked
// paid, the existing record is updated, so that there is only ever one record
// per member and period.
//
// The amount may differ from the fee. The difference is reported as discrepancy.
func (l *Ledger) MarkPaid(ctx context.Context, organizationID uuid.UUID, in MarkPaidInput) (PaymentRecord, error) {
	var result PaymentRecord

	err := l.transaction(ctx, func(tx *gorm.DB) error {
		member, err := ownedBy[models.Member](tx, organizationID, in.MemberID)
		if err != nil {
			return err
		}

		interval := in.Interval
		if interval == "" {
			interval = member.Interval
		}

		if _, err := types.ParsePeriodKeyFor(interval, in.PeriodKey); err != nil {
			return fmt.Errorf("%w: %w", models.ErrValidation, err)
		}

		var voucher *models.Voucher
		if in.VoucherID != nil && *in.VoucherID != uuid.Nil {
			v, err := ownedBy[models.Voucher](tx, organizationID, *in.VoucherID)
			if err != nil {
				return err
			}
			voucher = &v
		}

		amount := member.Fee
		if in.Amount != nil {
			amount = *in.Amount
		}

		paidAt := l.Now().In(time.UTC)
		if in.PaidAt != nil {
			paidAt = in.PaidAt.In(time.UTC)
		}

		var payment models.MemberPayment
		err = tx.Where("member_id = ? AND period_key = ?", member.ID, in.PeriodKey).Limit(1).Find(&payment).Error
		if err != nil {
			return err
		}

		before := payment
		payment.MemberID = member.ID
		payment.PeriodKey = in.PeriodKey
		payment.Interval = interval
		payment.Amount = amount
		payment.VoucherID = in.VoucherID
		payment.Verified = in.Verified
		payment.PaidAt = paidAt

		if payment.ID == uuid.Nil {
			err = tx.Omit(clause.Associations).Create(&payment).Error
		} else {
			err = tx.Omit(clause.Associations).Save(&payment).Error
		}
		if err != nil {
			return err
		}

		payment.Voucher = voucher
		result = record(payment, member)

		payload := map[string]any{"payment": result}
		if before.ID != uuid.Nil {
			payload["before"] = before
		}

		return audit(ctx, tx, organizationID, ActionMarkPaid, "member_payment", payment.ID.String(), payload)
	})
	if err != nil {
		return PaymentRecord{}, err
	}

	return result, nil
}

// Unmark removes the payment record of the period. Unmarking a period
// that is not marked paid does nothing.
func (l *Ledger) Unmark(ctx context.Context, organizationID, memberID uuid.UUID, periodKey string) error {
	if _, err := types.ParsePeriodKey(periodKey); err != nil {
		return fmt.Errorf("%w: %w", models.ErrValidation, err)
	}

	return l.transaction(ctx, func(tx *gorm.DB) error {
		member, err := ownedBy[models.Member](tx, organizationID, memberID)
		if err != nil {
			return err
		}

		var payment models.MemberPayment
		err = tx.Where("member_id = ? AND period_key = ?", member.ID, periodKey).First(&payment).Error
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}

		err = tx.Delete(&payment).Error
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionUnmark, "member_payment", payment.ID.String(), payment)
	})
}

// PaymentHistory returns the latest payments of the member, oldest first.
// A limit of zero or less returns DefaultLimit records.
func (l *Ledger) PaymentHistory(ctx context.Context, organizationID, memberID uuid.UUID, limit int) ([]PaymentRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	db := l.db(ctx)
	member, err := ownedBy[models.Member](db, organizationID, memberID)
	if err != nil {
		return nil, err
	}

	var recent []models.MemberPayment
	err = db.
		Preload("Voucher").
		Where("member_id = ?", member.ID).
		Order("paid_at DESC, period_key DESC").
		Limit(limit).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}

	history := make([]PaymentRecord, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, record(recent[i], member))
	}

	return history, nil
}
