package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const transientMessage = "Serviço temporariamente indisponível. Tente novamente."

// transientPgCodes are postgres SQLSTATEs worth retrying: lost connections,
// serialization failures, deadlocks, lock and statement timeouts, too many connections.
var transientPgCodes = map[string]bool{
	"40001": true,
	"40P01": true,
	"55P03": true,
	"57014": true,
	"53300": true,
}

// classify maps store errors into the business taxonomy. Business errors pass through.
func classify(err error, notFoundCode, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if _, ok := httperr.AsBusiness(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundErr(notFoundCode, notFoundMessage)
	}
	if isTransient(err) {
		return httperr.Transient("store_unavailable", transientMessage, err)
	}
	return err
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return transientPgCodes[pgErr.Code] || strings.HasPrefix(pgErr.Code, "08")
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	// sqlite reports contention as text.
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
