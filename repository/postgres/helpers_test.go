package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/backend/domain"
)

func TestTranslateError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: sqlstateUniqueViolation}
	err := translateError(fmt.Errorf("insert: %w", pgErr))

	require.True(t, domain.IsDomainError(err, domain.ErrCodeDuplicate))
	require.ErrorAs(t, err, &pgErr)
}

func TestTranslateError_ForeignKeyViolation(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: sqlstateForeignKeyViolation})

	require.True(t, domain.IsDomainError(err, domain.ErrCodeForeignKey))
}

func TestTranslateError_PassThrough(t *testing.T) {
	plain := errors.New("connection reset")
	require.Same(t, plain, translateError(plain))

	// Domain sentinels survive untouched.
	require.Same(t, error(domain.ErrTaskNotFound), translateError(domain.ErrTaskNotFound))
}
