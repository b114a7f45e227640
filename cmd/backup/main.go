package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/BruksfildServices01/axanet-clients/internal/backup"
	"github.com/BruksfildServices01/axanet-clients/internal/config"
)

func main() {
	cfg := config.Load()
	if !cfg.BackupEnabled() {
		log.Fatal("BACKUP_BUCKET is not set")
	}

	b, err := backup.New(backup.NewS3Client(cfg), cfg.BackupBucket, cfg.BackupPrefix, cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to configure backup: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	keys, err := b.Run(ctx)
	if err != nil {
		log.Fatalf("backup failed after %d upload(s): %v", len(keys), err)
	}
}
