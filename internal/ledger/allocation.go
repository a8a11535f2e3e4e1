package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Usage is the signed sum of the bookings referencing an earmark or budget.
// Credits count positive, debits negative.
type Usage struct {
	EarmarkID *uuid.UUID   `json:"earmarkId,omitempty" yaml:"earmarkId,omitempty"`
	BudgetID  *uuid.UUID   `json:"budgetId,omitempty" yaml:"budgetId,omitempty"`
	Year      *int         `json:"year,omitempty" yaml:"year,omitempty"` // Year the usage is scoped to
	Bookings  int64        `json:"bookings" yaml:"bookings"`             // Number of bookings referencing the earmark or budget
	Credit    types.Money  `json:"credit" yaml:"credit"`
	Debit     types.Money  `json:"debit" yaml:"debit"`
	Usage     types.Money  `json:"usage" yaml:"usage"`
	Ceiling   *types.Money `json:"ceiling,omitempty" yaml:"ceiling,omitempty"`     // Ceiling of the budget, if any
	Remaining *types.Money `json:"remaining,omitempty" yaml:"remaining,omitempty"` // Ceiling plus usage, if a ceiling is set
}

type sums struct {
	Bookings int64
	Credit   types.Money
	Debit    types.Money
}

// usage sums the bookings of the organization referencing the ID in the column.
func usage(tx *gorm.DB, organizationID uuid.UUID, column string, id uuid.UUID, year *int) (sums, error) {
	q := tx.Model(&models.Booking{}).
		Joins("JOIN vouchers ON vouchers.id = bookings.voucher_id").
		Where("vouchers.organization_id = ?", organizationID).
		Where("bookings."+column+" = ?", id)

	if year != nil {
		q = q.Where("vouchers.year = ?", *year)
	}

	var s sums
	err := q.Select("COUNT(bookings.id) AS bookings, COALESCE(SUM(bookings.credit), 0) AS credit, COALESCE(SUM(bookings.debit), 0) AS debit").Scan(&s).Error
	return s, err
}

// EarmarkUsage computes the usage of the earmark from its bookings, optionally
// only for one year.
func (l *Ledger) EarmarkUsage(ctx context.Context, organizationID, earmarkID uuid.UUID, year *int) (Usage, error) {
	db := l.db(ctx)
	earmark, err := ownedBy[models.Earmark](db, organizationID, earmarkID)
	if err != nil {
		return Usage{}, err
	}

	s, err := usage(db, organizationID, "earmark_id", earmark.ID, year)
	if err != nil {
		return Usage{}, err
	}

	return Usage{
		EarmarkID: &earmark.ID,
		Year:      year,
		Bookings:  s.Bookings,
		Credit:    s.Credit,
		Debit:     s.Debit,
		Usage:     s.Credit - s.Debit,
	}, nil
}

// BudgetUsage computes the usage of the budget from its bookings.
//
// Without a year, the usage is scoped to the year of the budget.
func (l *Ledger) BudgetUsage(ctx context.Context, organizationID, budgetID uuid.UUID, year *int) (Usage, error) {
	db := l.db(ctx)
	budget, err := ownedBy[models.Budget](db, organizationID, budgetID)
	if err != nil {
		return Usage{}, err
	}

	if year == nil {
		year = &budget.Year
	}

	s, err := usage(db, organizationID, "budget_id", budget.ID, year)
	if err != nil {
		return Usage{}, err
	}

	u := Usage{
		BudgetID: &budget.ID,
		Year:     year,
		Bookings: s.Bookings,
		Credit:   s.Credit,
		Debit:    s.Debit,
		Usage:    s.Credit - s.Debit,
		Ceiling:  budget.Ceiling,
	}

	if budget.Ceiling != nil {
		remaining := *budget.Ceiling + u.Usage
		u.Remaining = &remaining
	}

	return u, nil
}

// AssignTarget is the classification applied by a batch assignment.
// Exactly one of the fields must be set.
type AssignTarget struct {
	EarmarkID *uuid.UUID  `json:"earmarkId,omitempty"`
	BudgetID  *uuid.UUID  `json:"budgetId,omitempty"`
	TagIDs    []uuid.UUID `json:"tagIds,omitempty"`
}

// BatchFilter selects the bookings of a batch assignment by their voucher.
type BatchFilter struct {
	From          *time.Time           `json:"from,omitempty"`
	Until         *time.Time           `json:"until,omitempty"`
	Sphere        models.Sphere        `json:"sphere,omitempty"`
	Type          models.VoucherType   `json:"type,omitempty"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod,omitempty"`
	Search        string               `json:"search,omitempty"` // Matches voucher description, counterparty and booking memo
}

// BatchResult reports the outcome of a batch assignment.
type BatchResult struct {
	Updated int64 `json:"updated"`
	Skipped int64 `json:"skipped"` // Bookings in closed fiscal years
}

type candidate struct {
	ID   uuid.UUID
	Year int
}

// BatchAssign applies the target classification to all bookings matching the filter.
//
// With onlyWithout, only bookings that do not have the kind of classification yet
// are updated. Bookings in closed years are never changed, they are counted as skipped.
// Tags are added to the existing tags of the bookings.
func (l *Ledger) BatchAssign(ctx context.Context, organizationID uuid.UUID, target AssignTarget, filter BatchFilter, onlyWithout bool) (BatchResult, error) {
	set := 0
	if target.EarmarkID != nil {
		set++
	}
	if target.BudgetID != nil {
		set++
	}
	if len(target.TagIDs) > 0 {
		set++
	}

	if set != 1 {
		return BatchResult{}, models.Validationf("exactly one of earmark, budget or tags must be assigned")
	}

	if filter.Type != "" && !filter.Type.Valid() {
		return BatchResult{}, models.Validationf("'%s' is not a valid voucher type", filter.Type)
	}

	if !filter.Sphere.Valid() {
		return BatchResult{}, models.Validationf("'%s' is not a valid sphere", filter.Sphere)
	}

	if !filter.PaymentMethod.Valid() {
		return BatchResult{}, models.Validationf("'%s' is not a valid payment method", filter.PaymentMethod)
	}

	var result BatchResult
	err := l.transaction(ctx, func(tx *gorm.DB) error {
		if _, err := organization(tx, organizationID); err != nil {
			return err
		}

		var tags []models.Tag
		switch {
		case target.EarmarkID != nil:
			if _, err := ownedBy[models.Earmark](tx, organizationID, *target.EarmarkID); err != nil {
				return err
			}
		case target.BudgetID != nil:
			if _, err := ownedBy[models.Budget](tx, organizationID, *target.BudgetID); err != nil {
				return err
			}
		default:
			seen := make(map[uuid.UUID]bool, len(target.TagIDs))
			for _, id := range target.TagIDs {
				if seen[id] {
					continue
				}
				seen[id] = true

				tag, err := ownedBy[models.Tag](tx, organizationID, id)
				if err != nil {
					return err
				}
				tags = append(tags, tag)
			}
		}

		q := tx.Model(&models.Booking{}).
			Select("bookings.id AS id, vouchers.year AS year").
			Joins("JOIN vouchers ON vouchers.id = bookings.voucher_id").
			Where("vouchers.organization_id = ?", organizationID)

		if filter.From != nil {
			q = q.Where("vouchers.date >= ?", models.Date(*filter.From))
		}

		if filter.Until != nil {
			q = q.Where("vouchers.date < ?", models.Date(*filter.Until).AddDate(0, 0, 1))
		}

		if filter.Sphere != "" {
			q = q.Where("vouchers.sphere = ?", filter.Sphere)
		}

		if filter.Type != "" {
			q = q.Where("vouchers.type = ?", filter.Type)
		}

		if filter.PaymentMethod != "" {
			q = q.Where("vouchers.payment_method = ?", filter.PaymentMethod)
		}

		if strings.TrimSpace(filter.Search) != "" {
			pattern := like(filter.Search)
			q = q.Where(
				tx.Where(`LOWER(vouchers.description) LIKE ? ESCAPE '\'`, pattern).
					Or(`LOWER(vouchers.counterparty) LIKE ? ESCAPE '\'`, pattern).
					Or(`LOWER(bookings.memo) LIKE ? ESCAPE '\'`, pattern),
			)
		}

		if onlyWithout {
			switch {
			case target.EarmarkID != nil:
				q = q.Where("bookings.earmark_id IS NULL")
			case target.BudgetID != nil:
				q = q.Where("bookings.budget_id IS NULL")
			default:
				q = q.Where("NOT EXISTS (SELECT 1 FROM booking_tags WHERE booking_tags.booking_id = bookings.id)")
			}
		}

		// Bookings that already have the target are not updated
		switch {
		case target.EarmarkID != nil:
			q = q.Where("(bookings.earmark_id IS NULL OR bookings.earmark_id <> ?)", *target.EarmarkID)
		case target.BudgetID != nil:
			q = q.Where("(bookings.budget_id IS NULL OR bookings.budget_id <> ?)", *target.BudgetID)
		default:
			tagIDs := make([]uuid.UUID, 0, len(tags))
			for _, tag := range tags {
				tagIDs = append(tagIDs, tag.ID)
			}
			q = q.Where("(SELECT COUNT(*) FROM booking_tags WHERE booking_tags.booking_id = bookings.id AND booking_tags.tag_id IN ?) < ?", tagIDs, len(tagIDs))
		}

		var candidates []candidate
		err := q.Scan(&candidates).Error
		if err != nil {
			return err
		}

		var closedYears []int
		err = tx.Model(&models.FiscalYear{}).Where("organization_id = ? AND closed = ?", organizationID, true).Pluck("year", &closedYears).Error
		if err != nil {
			return err
		}

		closed := make(map[int]bool, len(closedYears))
		for _, y := range closedYears {
			closed[y] = true
		}

		ids := make([]uuid.UUID, 0, len(candidates))
		for _, c := range candidates {
			if closed[c.Year] {
				result.Skipped++
				continue
			}
			ids = append(ids, c.ID)
		}
		result.Updated = int64(len(ids))

		if result.Skipped > 0 {
			log.Warn().
				Str("organization", organizationID.String()).
				Int64("skipped", result.Skipped).
				Msg("batch assignment skipped bookings in closed fiscal years")
		}

		if len(ids) == 0 {
			return nil
		}

		switch {
		case target.EarmarkID != nil:
			err = tx.Model(&models.Booking{}).Where("id IN ?", ids).Update("earmark_id", *target.EarmarkID).Error
		case target.BudgetID != nil:
			err = tx.Model(&models.Booking{}).Where("id IN ?", ids).Update("budget_id", *target.BudgetID).Error
		default:
			links := make([]map[string]any, 0, len(ids)*len(tags))
			for _, id := range ids {
				for _, tag := range tags {
					links = append(links, map[string]any{"booking_id": id, "tag_id": tag.ID})
				}
			}
			err = tx.Table("booking_tags").Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
		}
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionBatchAssign, "booking", "", map[string]any{
			"target":      target,
			"filter":      filter,
			"onlyWithout": onlyWithout,
			"updated":     result.Updated,
			"skipped":     result.Skipped,
			"bookings":    ids,
		})
	})
	if err != nil {
		return BatchResult{}, err
	}

	batchRowsUpdated.WithLabelValues("updated").Add(float64(result.Updated))
	batchRowsUpdated.WithLabelValues("skipped").Add(float64(result.Skipped))

	return result, nil
}
