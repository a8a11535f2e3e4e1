package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},

		// Generated timestamps are always UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := gormConfig()

	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then the table
	// is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writers and prevents SQLITE_BUSY.
	// Voucher numbering relies on this for SQLite, concurrent number
	// assignments are then impossible and the retry never triggers.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// ConnectPostgres opens a PostgreSQL database.
//
// Postgres runs transactions concurrently, so voucher number races are
// detected by the unique index and retried by the ledger.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxOpenConns(10)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("ledger:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("ledger:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("ledger:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("ledger:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("ledger:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("ledger:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("ledger:after_delete", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("ledger:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Raw and Exec statements
	err = db.Callback().Raw().After("*").Register("ledger:after_raw_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Row().After("*").Register("ledger:after_row_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraints maps unique indexes to the errors returned when they are violated.
// The key is the SQLite error message, the value's index name is what Postgres reports.
var uniqueConstraints = []struct {
	sqlite string
	index  string
	err    error
}{
	{"vouchers.organization_id, vouchers.year, vouchers.number", "idx_voucher_number", ErrVoucherNumberNotUnique},
	{"accounts.organization_id, accounts.number", "idx_account_number", ErrAccountNumberNotUnique},
	{"earmarks.organization_id, earmarks.code", "idx_earmark_code", ErrEarmarkCodeNotUnique},
	{"tags.organization_id, tags.name", "idx_tag_name", ErrTagNameNotUnique},
	{"budgets.organization_id, budgets.label, budgets.year", "idx_budget_label", ErrBudgetLabelNotUnique},
	{"members.organization_id, members.number", "idx_member_number", ErrMemberNumberNotUnique},
	{"organizations.name", "idx_organization_name", ErrOrganizationNameInUse},
}

// createUpdateCallback inspects errors returned by the database for create,
// update and delete calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(db.Error, &pgErr) {
		db.Error = translatePostgres(pgErr)
		return
	}

	message := db.Error.Error()
	if strings.Contains(message, "UNIQUE constraint failed") {
		for _, c := range uniqueConstraints {
			if strings.Contains(message, c.sqlite) {
				db.Error = c.err
				return
			}
		}

		db.Error = fmt.Errorf("%w: %s", ErrConstraint, strings.TrimPrefix(message, "constraint failed: "))
		return
	}

	if strings.Contains(message, "FOREIGN KEY constraint failed") {
		db.Error = fmt.Errorf("%w: a referenced resource does not exist or is still in use", ErrConstraint)
		return
	}

	if strings.Contains(message, "CHECK constraint failed") {
		db.Error = fmt.Errorf("%w: %s", ErrConstraint, strings.TrimPrefix(message, "constraint failed: "))
	}
}

func translatePostgres(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgUniqueViolation:
		for _, c := range uniqueConstraints {
			if pgErr.ConstraintName == c.index {
				return c.err
			}
		}
		return fmt.Errorf("%w: %s", ErrConstraint, pgErr.Detail)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: a referenced resource does not exist or is still in use", ErrConstraint)
	case pgCheckViolation:
		return fmt.Errorf("%w: %s", ErrConstraint, pgErr.ConstraintName)
	}

	log.Error().Str("code", pgErr.Code).Msgf("%T: %v", pgErr, pgErr.Error())
	return ErrGeneral
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(db.Error, &pgErr) {
		db.Error = translatePostgres(pgErr)
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(
		Organization{},
		Account{},
		Earmark{},
		Budget{},
		Tag{},
		Voucher{},
		VoucherSequence{},
		Booking{},
		Attachment{},
		Invoice{},
		InvoicePayment{},
		Member{},
		MemberPayment{},
		FiscalYear{},
		AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
