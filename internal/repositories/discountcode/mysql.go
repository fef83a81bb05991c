package discountcode

import (
	"context"
	"database/sql"
	"strings"

	// MySQL driver registration
	_ "github.com/go-sql-driver/mysql"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
)

const errCodeEmpty = "discount code cannot be empty"

type mysqlRepository struct {
	db *sql.DB
}

// NewMySQLRepository creates a MySQL-backed discount code repository
func NewMySQLRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

// EnsureSchema creates the discount_codes table if it doesn't exist. The
// admin tooling writes rows; this service only reads them.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS discount_codes (
        code VARCHAR(64) PRIMARY KEY,
        discount_type VARCHAR(16) NOT NULL,
        discount_value BIGINT NOT NULL DEFAULT 0,
        apply_to VARCHAR(16) NOT NULL DEFAULT 'total',
        min_purchase BIGINT NOT NULL DEFAULT 0,
        max_discount BIGINT NOT NULL DEFAULT 0,
        is_active TINYINT(1) NOT NULL DEFAULT 1,
        valid_from TIMESTAMP NULL,
        valid_until TIMESTAMP NULL,
        usage_limit INT NOT NULL DEFAULT 0,
        usage_count INT NOT NULL DEFAULT 0,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    )`)
	return err
}

func (r *mysqlRepository) GetByCode(ctx context.Context, input GetByCodeInput) (*GetByCodeOutput, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, errors.InvalidArgument(errCodeEmpty)
	}

	row := r.db.QueryRowContext(ctx, `SELECT
            code, discount_type, discount_value, apply_to,
            min_purchase, max_discount, is_active,
            valid_from, valid_until, usage_limit, usage_count
        FROM discount_codes WHERE code = ?`, code)

	var (
		dc         entities.DiscountCode
		validFrom  sql.NullTime
		validUntil sql.NullTime
	)
	err := row.Scan(
		&dc.Code, &dc.DiscountType, &dc.DiscountValue, &dc.ApplyTo,
		&dc.MinPurchase, &dc.MaxDiscount, &dc.IsActive,
		&validFrom, &validUntil, &dc.UsageLimit, &dc.UsageCount,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("discount code %s not found", code)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query discount code")
	}

	if validFrom.Valid {
		t := validFrom.Time.UTC()
		dc.ValidFrom = &t
	}
	if validUntil.Valid {
		t := validUntil.Time.UTC()
		dc.ValidUntil = &t
	}

	return &GetByCodeOutput{Code: &dc}, nil
}
