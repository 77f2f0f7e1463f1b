package database

import (
	"context"
	"fmt"
	"time"

	"interview-prep/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registered as "oracle"
	"go.uber.org/zap"
)

const (
	// DriverGoOra is the pure-Go Oracle driver and the default.
	DriverGoOra = "oracle"
	// DriverGodror is the cgo Oracle driver, selectable with db.driver.
	DriverGodror = "godror"
)

const pingTimeout = 10 * time.Second

func init() {
	// sqlx에 go-ora는 등록되어 있지 않아서 named bind(:name)로 지정
	sqlx.BindDriver(DriverGoOra, sqlx.NAMED)
}

// NewSQLXDB connects with the given driver and verifies the connection.
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	if driver == "" {
		driver = DriverGoOra
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database", zap.String("driver", driver))
	return db, nil
}
