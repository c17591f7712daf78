package config

import (
	"mission-service/src/internal/delivery/http"
	"mission-service/src/internal/delivery/http/middleware"
	"mission-service/src/internal/delivery/http/route"
	"mission-service/src/internal/gateway/messaging"
	"mission-service/src/internal/repository"
	"mission-service/src/internal/usecase"
	kafkaPkgConfluent "mission-service/src/pkg/kafka/confluent"
	"mission-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	missionRepository := repository.NewMissionRepository()
	walletRepository := repository.NewWalletRepository()
	subscriptionRepository := repository.NewSubscriptionRepository()
	ratingRepository := repository.NewRatingRepository()
	reportRepository := repository.NewReportRepository()
	missionProducer := messaging.NewMissionProducer(config.Producer, config.Log)
	safetyProducer := messaging.NewSafetyProducer(config.Producer, config.Log)

	// setup use cases
	missionUseCase := usecase.NewMissionUseCase(
		config.Log,
		config.Validate,
		missionRepository,
		walletRepository,
		config.Config,
		config.Redis,
		missionProducer,
	)

	walletUseCase := usecase.NewWalletUseCase(
		config.Log,
		config.Validate,
		walletRepository,
		config.Config,
	)

	subscriptionUseCase := usecase.NewSubscriptionUseCase(
		config.Log,
		config.Validate,
		subscriptionRepository,
		config.Config,
		config.AsynqClient,
	)

	ratingUseCase := usecase.NewRatingUseCase(
		config.Log,
		config.Validate,
		ratingRepository,
	)

	safetyUseCase := usecase.NewSafetyUseCase(
		config.Log,
		config.Validate,
		reportRepository,
		safetyProducer,
	)

	// setup controller
	missionController := http.NewMissionController(missionUseCase, config.Log)
	walletController := http.NewWalletController(walletUseCase, config.Log)
	subscriptionController := http.NewSubscriptionController(subscriptionUseCase, config.Log)
	ratingController := http.NewRatingController(ratingUseCase, config.Log)
	safetyController := http.NewSafetyController(safetyUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	if config.Async != nil {
		config.Async.HandleFunc(usecase.TypeSettleSubscription, subscriptionUseCase.HandleSettlePayment)
		config.Async.HandleFunc(usecase.TypeSettleWithdrawal, walletUseCase.HandleSettleWithdrawal)
	}

	if config.Config.GetBool("seed.enabled") {
		SeedFixtures(config.Config, config.Log, missionRepository, walletRepository)
	}

	routeConfig := route.RouteConfig{
		App:                    config.App,
		MissionController:      missionController,
		WalletController:       walletController,
		SubscriptionController: subscriptionController,
		RatingController:       ratingController,
		SafetyController:       safetyController,
		AuthMiddleware:         authMiddleware,
	}
	routeConfig.Setup()
}
