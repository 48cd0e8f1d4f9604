package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/lin-hy/gangcheng-bnb/config"
	"github.com/lin-hy/gangcheng-bnb/internal/app"
	"github.com/lin-hy/gangcheng-bnb/internal/cache"
	"github.com/lin-hy/gangcheng-bnb/internal/database"
	"github.com/lin-hy/gangcheng-bnb/internal/mq"
	"github.com/lin-hy/gangcheng-bnb/internal/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	redisCache, err := cache.NewRedisCache(cfg.CacheURL)
	if err != nil {
		logger.Fatal("connect redis", zap.Error(err))
	}

	mqConn, err := mq.NewMQConn(cfg.MQURL)
	if err != nil {
		logger.Fatal("connect rabbitmq", zap.Error(err))
	}
	defer mqConn.Close()

	a := app.New(cfg, db, redisCache, mqConn, logger)
	if err := a.Init(); err != nil {
		logger.Fatal("init app", zap.Error(err))
	}
	defer a.Close()

	r := router.New(a)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
