package bootstrap

import (
	"ai-supportbot-be/internal/config"
	"ai-supportbot-be/internal/controller"
	"ai-supportbot-be/internal/pkg/logger"
	"ai-supportbot-be/internal/repository/unitofwork"
	"ai-supportbot-be/internal/service"
	"ai-supportbot-be/pkg/chat/history"
	"ai-supportbot-be/pkg/llm"
	"ai-supportbot-be/pkg/llm/openrouter"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	AdminController   controller.IAdminController

	// Background services (exposed for main.go to run)
	JobService service.IJobService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Job bus (in-process)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Model client; config is resolved once here, never read ad hoc
	var llmProvider llm.Provider = openrouter.NewProvider(
		cfg.Ai.APIKey,
		cfg.Ai.Model,
		cfg.Ai.BaseURL,
	)

	// 4. Domain components
	historyLoader := history.NewLoader(uowFactory)

	chatService := service.NewChatService(uowFactory, llmProvider, historyLoader, sysLogger)
	adminService := service.NewAdminService(uowFactory, pubSub, sysLogger)
	jobService := service.NewJobService(pubSub, uowFactory, sysLogger)

	return &Container{
		SessionController: controller.NewSessionController(chatService),
		AdminController:   controller.NewAdminController(adminService),
		JobService:        jobService,
		Logger:            sysLogger,
	}
}
