package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/axanet-clients/internal/config"
	"github.com/BruksfildServices01/axanet-clients/internal/models"
)

// NewDB abre o Postgres da trilha de auditoria. Só é chamado com
// DATABASE_URL configurada.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
