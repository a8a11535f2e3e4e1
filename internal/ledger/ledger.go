// Package ledger implements the ledger and reconciliation engine.
//
// All operations take the organization explicitly. Mutations run in a single
// database transaction together with the audit log entry describing them.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const (
	// DefaultMaxRetries is the number of retries for voucher number conflicts.
	DefaultMaxRetries = 3

	// DefaultLookbackDays is how far before a period suggestions are searched.
	DefaultLookbackDays = 90

	// DefaultLimit is the page size for listings without an explicit limit.
	DefaultLimit = 50

	// DefaultCurrency is used for organizations created without a currency.
	DefaultCurrency = "EUR"
)

// Ledger is the engine operating on one database.
type Ledger struct {
	DB              *gorm.DB
	Now             func() time.Time // Clock used for "today", reversal dates and timestamps
	MaxRetries      int              // Retries of voucher creation after number conflicts
	LookbackDays    int              // Days before a period's start that suggestions consider
	DefaultCurrency string           // Currency of new organizations without one
}

// New returns a ledger using the database with default settings.
func New(db *gorm.DB) *Ledger {
	return &Ledger{
		DB: db,
		Now: func() time.Time {
			return time.Now().In(time.UTC)
		},
		MaxRetries:      DefaultMaxRetries,
		LookbackDays:    DefaultLookbackDays,
		DefaultCurrency: DefaultCurrency,
	}
}

// Page is the window of a listing.
type Page struct {
	Offset int `form:"offset" json:"offset"`
	Limit  int `form:"limit" json:"limit"` // Zero selects DefaultLimit, a negative value returns all
}

func (p Page) limit() int {
	if p.Limit == 0 {
		return DefaultLimit
	}
	return p.Limit
}

func (p Page) offset() int {
	if p.Offset < 0 {
		return 0
	}
	return p.Offset
}

type userKey struct{}

// WithUser returns a context carrying the ID of the acting user.
// It is recorded in the audit log of all mutations run with the context.
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, userID)
}

// userFrom returns the acting user of the context, if any.
func userFrom(ctx context.Context) *string {
	user, ok := ctx.Value(userKey{}).(string)
	if !ok {
		return nil
	}
	return &user
}

// today returns the current calendar day as UTC midnight.
func (l *Ledger) today() time.Time {
	return models.Date(l.Now())
}

func (l *Ledger) db(ctx context.Context) *gorm.DB {
	return l.DB.WithContext(ctx)
}

// transaction runs fn in a database transaction.
func (l *Ledger) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return l.db(ctx).Transaction(fn)
}

// organization loads the organization and fails with ErrResourceNotFound
// if it does not exist.
func organization(tx *gorm.DB, organizationID uuid.UUID) (models.Organization, error) {
	var o models.Organization
	err := tx.First(&o, "id = ?", organizationID).Error
	return o, err
}

// ownedBy loads the resource with the ID if it belongs to the organization.
//
// A resource of another organization is reported as not existing.
func ownedBy[T any](tx *gorm.DB, organizationID, id uuid.UUID) (T, error) {
	var resource T
	err := tx.Where("id = ? AND organization_id = ?", id, organizationID).First(&resource).Error
	return resource, err
}

// guardYear fails with a LockedPeriodError if the year is closed.
func guardYear(tx *gorm.DB, organizationID uuid.UUID, year int) error {
	closed, err := models.IsClosed(tx, organizationID, year)
	if err != nil {
		return err
	}

	if closed {
		return models.LockedPeriodError{OrganizationID: organizationID, Year: year}
	}
	return nil
}

func validYear(year int) error {
	if year < 1900 || year > 9999 {
		return models.Validationf("%d is not a valid fiscal year", year)
	}
	return nil
}

var (
	vouchersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_vouchers_created_total",
			Help: "Number of vouchers created, including reversals.",
		},
	)

	numberingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_voucher_number_conflicts_total",
			Help: "Number of voucher number conflicts that caused a retry.",
		},
	)

	batchRowsUpdated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_batch_assign_bookings_total",
			Help: "Number of bookings processed by batch assignments.",
		},
		[]string{"outcome"},
	)
)

// Collectors returns the prometheus collectors of the engine.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{vouchersCreated, numberingConflicts, batchRowsUpdated}
}

// isNotFound reports whether err is a not found error.
func isNotFound(err error) bool {
	return errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
