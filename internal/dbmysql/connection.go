package dbmysql

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gomarket/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL
func NewMySQL(cnf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cnf.DSN()), &gorm.Config{
		Logger:      logger.Default.LogMode(gormLogLevel(cnf.Logging.Level)),
		PrepareStmt: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	glog.Infof("✅ Connected to MySQL at %s:%s/%s", cnf.Database.Host, cnf.Database.Port, cnf.Database.DatabaseName)
	return db, nil
}

// AutoMigrate creates or updates the chat tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Conversation{}, &Message{}); err != nil {
		return fmt.Errorf("migrate chat tables: %w", err)
	}
	return nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}
