package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskhub/backend/domain"
)

// Postgres SQLSTATEs the API maps onto its wire taxonomy.
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
)

// translateError converts store-native constraint violations into domain
// errors. Anything unrecognized passes through unchanged and surfaces as a
// server error at the handler boundary.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateUniqueViolation:
			return domain.WrapError(domain.ErrCodeDuplicate, "Duplicate entry", err)
		case sqlstateForeignKeyViolation:
			return domain.WrapError(domain.ErrCodeForeignKey, "Referenced resource not found", err)
		}
	}
	return err
}
