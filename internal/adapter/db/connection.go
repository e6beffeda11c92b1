package db

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"todolist/internal/config"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case DriverSQLite:
		return OpenSQLite(conf.SqlitePath, conf.DbAutoMigrate)
	case DriverMySQL, "":
		return openMySQL(conf)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", conf.DbDriver)
	}
}

func openMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect(DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	if conf.DbAutoMigrate {
		if err := ApplySchema(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database file through the pure Go driver.
func OpenSQLite(path string, migrate bool) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
	db, err := sqlx.Connect(DriverSQLite, dsn)
	if err != nil {
		return nil, err
	}
	// A single connection serialises writers; SQLite would otherwise report SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if migrate {
		if err := ApplySchema(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// ApplySchema creates the tables for the connected driver when they do not exist yet.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	schemaSQL, err := schemaFS.ReadFile("schema/" + db.DriverName() + ".sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
