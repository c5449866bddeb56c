package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	domainRepo "healthcare-management/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps driver failures onto the domain repository errors.
// Errors it does not recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domainRepo.ErrDuplicateKey, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domainRepo.ErrForeignKeyViolation, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s", domainRepo.ErrCheckViolation, pgErr.ConstraintName)
		}
		return err
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", domainRepo.ErrUnavailable, err)
	}

	return err
}

func isConnectionError(err error) bool {
	if pgconn.Timeout(err) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
