package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

const mysqlErrDupEntry = 1062

var ErrDuplicate = errors.New("duplicate key")

// mapError translates driver-specific constraint errors into package errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrDupEntry {
		return fmt.Errorf("%w: %s", ErrDuplicate, myErr.Message)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) &&
		(liteErr.ExtendedCode == sqlite3.ErrConstraintUnique || liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("%w: %s", ErrDuplicate, liteErr.Error())
	}

	return err
}
