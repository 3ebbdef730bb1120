package database

import (
	"fmt"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/migrations"
	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// New opens the database selected by DB_DRIVER using GORM
func New(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	if cfg.Database.Driver == "postgres" {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("✅ Database connected", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

// Migrate brings the schema up to date. PostgreSQL uses the embedded sql-migrate files,
// sqlite falls back to GORM's AutoMigrate since the SQL targets postgres types.
func Migrate(db *gorm.DB, driver string, log *zap.Logger) error {
	if driver == "sqlite" {
		if err := db.AutoMigrate(&entities.Meeting{}, &entities.ActionItem{}); err != nil {
			return fmt.Errorf("failed to auto-migrate sqlite schema: %w", err)
		}
		log.Info("✅ sqlite schema migrated")
		return nil
	}

	n, err := runMigrations(db, migrate.Up, 0)
	if err != nil {
		return err
	}
	log.Info("✅ Applied migrations", zap.Int("count", n))
	return nil
}

// Rollback reverts up to steps postgres migrations; 0 reverts all of them.
func Rollback(db *gorm.DB, steps int, log *zap.Logger) error {
	n, err := runMigrations(db, migrate.Down, steps)
	if err != nil {
		return err
	}
	log.Info("↩️ Rolled back migrations", zap.Int("count", n))
	return nil
}

func runMigrations(db *gorm.DB, direction migrate.MigrationDirection, max int) (int, error) {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       ".",
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.ExecMax(sqlDB, "postgres", source, direction, max)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration, error: %v", err)
	}
	return n, nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
