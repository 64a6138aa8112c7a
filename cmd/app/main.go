package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/bootstrap"
	"github.com/Domenick1991/skybooking/internal/cache"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/provider"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightProvider := provider.NewMockProvider(time.Duration(cfg.Catalog.FetchDelayMs) * time.Millisecond)
	bookingRepo := repository.NewBookingRepository()
	flightService := flights.NewFlightService(flightProvider, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightService,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.SeatHoldTTLMinutes)*time.Minute,
		time.Duration(cfg.Worker.CompleteAfterHours)*time.Hour,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := flightService.Refresh(ctx); err != nil {
		log.Printf("initial catalog load failed: %v", err)
	}

	// The booking store is in-memory, so the completion sweep has to run
	// here rather than in the worker process.
	go bookingService.RunCompletionSweep(ctx, time.Duration(cfg.Worker.CompletionSweepMinutes)*time.Minute)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
