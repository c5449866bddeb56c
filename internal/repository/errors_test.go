package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	domainRepo "healthcare-management/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_patient_doctor_mapping"},
			want: domainRepo.ErrDuplicateKey,
		},
		{
			name: "foreign key violation",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}),
			want: domainRepo.ErrForeignKeyViolation,
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "patients_age_check"},
			want: domainRepo.ErrCheckViolation,
		},
		{
			name: "bad connection",
			err:  driver.ErrBadConn,
			want: domainRepo.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.want)
		})
	}
}

func TestTranslateErrorPassesThrough(t *testing.T) {
	assert.NoError(t, translateError(nil))

	other := errors.New("syntax error")
	assert.Equal(t, other, translateError(other))

	notNull := &pgconn.PgError{Code: "23502"}
	assert.Equal(t, error(notNull), translateError(notNull))
}
