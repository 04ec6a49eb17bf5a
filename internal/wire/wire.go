package wire

import (
	"Beacon/internal/api"
	"Beacon/internal/api/config"
	"Beacon/internal/api/handler"
	"Beacon/internal/job"
	"Beacon/internal/pkg/cron"
	"Beacon/internal/pkg/kafka"
	"Beacon/internal/repository"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	channelRepo := repository.NewChannelRepo(db)
	contentRepo := repository.NewContentRepo(db)
	followRepo := repository.NewFollowRepo(db)
	alertRepo := repository.NewAlertRepo(db)

	userService := service.NewUserService(userRepo)
	channelService := service.NewChannelService(channelRepo, userRepo)
	contentService := service.NewContentService(contentRepo, channelRepo, userRepo)
	followService := service.NewFollowService(followRepo, channelRepo)
	feedService := service.NewFeedService(followRepo, contentRepo, userRepo)
	alertService := service.NewAlertService(alertRepo, contentRepo)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		ChannelHandler: handler.NewChannelHandler(channelService),
		ContentHandler: handler.NewContentHandler(contentService),
		FollowHandler:  handler.NewFollowHandler(followService, feedService),
		AlertHandler:   handler.NewAlertHandler(alertService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(job.NewAlertSweepJob(alertRepo))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
