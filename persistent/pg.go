package persistent

import (
	"context"
	"database/sql"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	_ "github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

func PgOpen(ctx context.Context, pgDsn string) *bun.DB {
	sqldb, err := sql.Open("pg", pgDsn)
	if err != nil {
		logrus.WithError(err).Fatalln("Could not open pg database.")
	}
	err = sqldb.PingContext(ctx)
	if err != nil {
		logrus.WithError(err).Fatalln("Could not ping pg database.")
	}

	bdb := bun.NewDB(sqldb, pgdialect.New())
	if os.Getenv("DB_VERBOSE") == "true" {
		bdb.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return bdb
}

// Integration tests share one pg instance started in TestMain, its dsn is
// passed through the environment.

func PgOpenTest(ctx context.Context) *bun.DB {
	return PgOpen(ctx, TestEnvDsn())
}

func TestEnvDsn() string {
	return os.Getenv("PGDB_DSN")
}

func SetTestEnvDsn(dsn string) {
	os.Setenv("PGDB_DSN", dsn)
}

func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		IfNotExists().
		Model((*Profile)(nil)).
		Exec(ctx)
	return err
}
