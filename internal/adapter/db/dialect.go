package db

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

// SQLite's LOWER() and LIKE fold ASCII only, so text comparisons on SQLite go through this
// function instead. MySQL's utf8mb4 collations already fold the whole of Unicode.
const sqliteUnicodeLower = "unicode_lower"

func init() {
	if err := sqlite.RegisterDeterministicScalarFunction(sqliteUnicodeLower, 1, unicodeLower); err != nil {
		panic(fmt.Sprintf("register %s: %v", sqliteUnicodeLower, err))
	}
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch value := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(value), nil
	case []byte:
		return strings.ToLower(string(value)), nil
	default:
		return value, nil
	}
}

// lowerExpr wraps a text expression in the driver's lower-case function.
func lowerExpr(driverName, expr string) string {
	if driverName == DriverSQLite {
		return sqliteUnicodeLower + "(" + expr + ")"
	}
	return "LOWER(" + expr + ")"
}

// textSortExpr makes text ordering case-insensitive on both drivers. MySQL collations do it
// already; SQLite would otherwise order by byte value.
func textSortExpr(driverName, expr string) string {
	if driverName == DriverSQLite {
		return sqliteUnicodeLower + "(" + expr + ")"
	}
	return expr
}
