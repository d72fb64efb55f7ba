package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DialectPostgres = "postgres"
	DialectSqlite   = "sqlite"
)

// NewGorm opens the storage client. The caller owns the returned handle and
// passes it to whatever needs the database.
func NewGorm(dialect, dsn string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres, "":
		dialector = postgres.Open(dsn)
	case DialectSqlite:
		dialector = sqlite.Open(withSqliteForeignKeys(dsn))
	default:
		return nil, fmt.Errorf("unsupported database dialect: %s", dialect)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(&log.Logger, logger.Config{
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  lo.Ternary(debug, logger.Info, logger.Silent),
		}),
	})
}

func withSqliteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}
	return dsn + lo.Ternary(strings.Contains(dsn, "?"), "&", "?") + "_foreign_keys=on"
}
