package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/portfolio-simple/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// DBConnection represents a database connection
type DBConnection struct {
	DB      *gorm.DB
	Name    string
	Dialect string
	Models  []interface{}
}

// NewDBConnection opens a database connection.
// postgres:// and postgresql:// URLs select PostgreSQL, anything else is a SQLite path.
func NewDBConnection(name, dbURL string, log *zap.Logger) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	dialector, dialect := dialectorFor(dbURL)

	// Configure GORM logger
	newLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %w", name, err)
	}

	if dialect == DialectSQLite {
		// one connection serialises writers and keeps :memory: databases alive
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("connected to database",
		zap.String("name", name),
		zap.String("dialect", dialect),
	)

	return &DBConnection{
		DB:      db,
		Name:    name,
		Dialect: dialect,
		Models: []interface{}{
			&models.Project{},
		},
	}, nil
}

// Close releases the underlying connection pool
func (c *DBConnection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(dbURL string) (gorm.Dialector, string) {
	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		return postgres.Open(dbURL), DialectPostgres
	}
	return sqlite.Open(strings.TrimPrefix(dbURL, "sqlite://")), DialectSQLite
}
