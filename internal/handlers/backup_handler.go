package handlers

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/axanet-clients/internal/httperr"
	"github.com/BruksfildServices01/axanet-clients/internal/httpresp"
)

type BackupRunner interface {
	Run(ctx context.Context) ([]string, error)
}

type BackupHandler struct {
	runner BackupRunner
}

func NewBackupHandler(runner BackupRunner) *BackupHandler {
	return &BackupHandler{runner: runner}
}

func (h *BackupHandler) Run(c *gin.Context) {
	keys, err := h.runner.Run(c.Request.Context())
	if err != nil {
		log.Printf("backup failed: %v", err)
		httperr.Internal(c, "backup_failed", "No se pudo completar el respaldo.")
		return
	}

	httpresp.OK(c, gin.H{
		"uploaded": len(keys),
		"keys":     keys,
	})
}
