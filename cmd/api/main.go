package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/axanet-clients/internal/audit"
	"github.com/BruksfildServices01/axanet-clients/internal/backup"
	"github.com/BruksfildServices01/axanet-clients/internal/config"
	dbpkg "github.com/BruksfildServices01/axanet-clients/internal/db"
	"github.com/BruksfildServices01/axanet-clients/internal/infra/repository"
	"github.com/BruksfildServices01/axanet-clients/internal/routes"
)

func main() {

	cfg := config.Load()

	repo, err := repository.NewClientFileRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open client store: %v", err)
	}

	deps := routes.Deps{
		Config: cfg,
		Repo:   repo,
	}

	var sink audit.Sink = audit.NewLogSink(nil)
	if cfg.AuditEnabled() {
		deps.DB = dbpkg.NewDB(cfg)
		sink = audit.New(deps.DB)
	}
	deps.Audit = audit.NewDispatcher(sink)
	defer deps.Audit.Close()

	if cfg.BackupEnabled() {
		b, err := backup.New(backup.NewS3Client(cfg), cfg.BackupBucket, cfg.BackupPrefix, cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to configure backup: %v", err)
		}
		deps.Backup = b
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, deps)

	if !cfg.AuthEnabled() {
		log.Println("JWT_SECRET or API_PASSWORD_HASH not set: /api answers 503 auth_disabled")
	}

	log.Printf("Client store at %s", repo.Dir())
	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
