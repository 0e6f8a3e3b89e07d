package main

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/braider-booking/internal/config"
	"github.com/BruksfildServices01/braider-booking/internal/logger"
	"github.com/BruksfildServices01/braider-booking/internal/notify"
)

// worker consome booking:notify e entrega as mensagens.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				notify.Queue: 1,
			},
			Logger: log.Sugar(),
		},
	)

	handler := notify.NewHandler(notify.NewLogMailer(log), log)

	log.Info("notify worker starting", zap.String("queue", notify.Queue))
	if err := srv.Run(notify.NewServeMux(handler)); err != nil {
		log.Fatal("notify worker stopped", zap.Error(err))
	}
}
