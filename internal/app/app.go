package app

import (
	"github.com/lin-hy/gangcheng-bnb/config"
	"github.com/lin-hy/gangcheng-bnb/internal/cache"
	"github.com/lin-hy/gangcheng-bnb/internal/mailer"
	"github.com/lin-hy/gangcheng-bnb/internal/mq"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service/domain"
	"github.com/lin-hy/gangcheng-bnb/internal/service/workflow"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	UserRepo    repository.UserRepo
	RoomRepo    repository.RoomRepo
	BookingRepo repository.BookingRepo
	ContactRepo repository.ContactRepo

	AuthService      domain.AuthService
	RoomService      domain.RoomService
	BookingService   domain.BookingService
	ContactService   domain.ContactService
	BootstrapService domain.BootstrapService

	BookingWorkflow      *workflow.BookingWorkflow
	ContactWorkflow      *workflow.ContactWorkflow
	NotificationWorkflow *workflow.NotificationWorkflow
}

func New(config *config.Config, db *gorm.DB, cache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) *App {
	userRepo := repository.NewUserRepoGorm(db)
	roomRepo := repository.NewRoomRepoGorm(db)
	bookingRepo := repository.NewBookingRepoGorm(db)
	contactRepo := repository.NewContactRepoGorm(db)

	authService := domain.NewAuthService(db, userRepo, cache)
	roomService := domain.NewRoomService(db, roomRepo)
	bookingService := domain.NewBookingService(db, bookingRepo, roomRepo)
	contactService := domain.NewContactService(db, contactRepo)
	bootstrapService := domain.NewBootstrapService(db, userRepo, roomRepo, config.AdminEmail, config.AdminPassword)

	producer := mq.NewProducer(mqConn)
	bookingWorkflow := workflow.NewBookingWorkflow(bookingService, producer, logger)
	contactWorkflow := workflow.NewContactWorkflow(contactService, producer, config.AdminEmail, logger)
	notificationWorkflow := workflow.NewNotificationWorkflow(mailer.New(config, logger), logger)

	return &App{
		Config:               config,
		DB:                   db,
		Cache:                cache,
		Logger:               logger,
		MQConn:               mqConn,
		UserRepo:             userRepo,
		RoomRepo:             roomRepo,
		BookingRepo:          bookingRepo,
		ContactRepo:          contactRepo,
		AuthService:          authService,
		RoomService:          roomService,
		BookingService:       bookingService,
		ContactService:       contactService,
		BootstrapService:     bootstrapService,
		BookingWorkflow:      bookingWorkflow,
		ContactWorkflow:      contactWorkflow,
		NotificationWorkflow: notificationWorkflow,
	}
}

func (app *App) Init() error {
	if err := mq.InitQueues(app.MQConn); err != nil {
		return err
	}

	return app.NotificationWorkflow.Start(app.MQConn)
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
