package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/axanet-clients/internal/audit"
	"github.com/BruksfildServices01/axanet-clients/internal/config"
	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
	"github.com/BruksfildServices01/axanet-clients/internal/handlers"
	"github.com/BruksfildServices01/axanet-clients/internal/middleware"
	"github.com/BruksfildServices01/axanet-clients/internal/timezone"
	ucClient "github.com/BruksfildServices01/axanet-clients/internal/usecase/client"
)

// Deps reúne o que as rotas precisam. DB e Backup são opcionais.
type Deps struct {
	Config *config.Config
	Repo   domain.Repository
	Audit  *audit.Dispatcher
	DB     *gorm.DB
	Backup handlers.BackupRunner
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	clock := timezone.Clock(cfg.Timezone)

	createClientUC := ucClient.NewCreateClient(deps.Repo, deps.Audit, clock)
	viewClientUC := ucClient.NewViewClient(deps.Repo)
	listClientsUC := ucClient.NewListClients(deps.Repo)
	addServiceUC := ucClient.NewAddService(deps.Repo, deps.Audit, clock)
	deleteClientUC := ucClient.NewDeleteClient(deps.Repo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	clientHandler := handlers.NewClientHandler(
		createClientUC,
		viewClientUC,
		listClientsUC,
		addServiceUC,
		deleteClientUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/token", authHandler.Token)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:name", clientHandler.Get)
			secured.POST("/clients/:name/services", clientHandler.AddService)
			secured.DELETE("/clients/:name", clientHandler.Delete)

			if deps.DB != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)
				secured.GET("/audit-logs", auditLogsHandler.List)
			}

			if deps.Backup != nil {
				backupHandler := handlers.NewBackupHandler(deps.Backup)
				secured.POST("/backup", backupHandler.Run)
			}
		}
	}
}
