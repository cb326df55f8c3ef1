package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/esphome/esphomeapi-go/internal/bridge"
	"github.com/esphome/esphomeapi-go/internal/client"
	"github.com/esphome/esphomeapi-go/internal/core"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Info("esphomeapi-go bridge starting")

	host := os.Getenv("ESPHOME_HOST")
	if host == "" {
		sugar.Fatal("ESPHOME_HOST is required")
	}
	devicePort, err := strconv.Atoi(envOrDefault("ESPHOME_PORT", "6053"))
	if err != nil {
		sugar.Fatalf("invalid ESPHOME_PORT: %v", err)
	}

	opts := []core.Option{
		core.WithLogger(sugar),
		core.WithExpectedName(os.Getenv("ESPHOME_EXPECTED_NAME")),
	}
	if password := os.Getenv("ESPHOME_PASSWORD"); password != "" {
		opts = append(opts, core.WithPassword(password))
	}
	if psk := os.Getenv("ESPHOME_PSK"); psk != "" {
		opts = append(opts, core.WithPSK(psk))
	}

	device := client.New(host, devicePort, opts...)

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := device.Connect(connectCtx, true); err != nil {
		sugar.Fatalf("failed to connect to device: %v", err)
	}
	sugar.Infow("connected to device", "host", host, "port", devicePort)

	if err := device.SubscribeStates(context.Background(), nil); err != nil {
		sugar.Warnw("failed to start state subscription", "error", err)
	}

	httpPort := envOrDefault("PORT", "8080")
	server := bridge.NewServer(bridge.ServerConfig{
		Port:   httpPort,
		Logger: sugar,
		Device: device,
	})

	go func() {
		if err := server.Start(); err != nil {
			sugar.Fatalf("bridge server failed: %v", err)
		}
	}()
	sugar.Infof("bridge listening on :%s", httpPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("shutting down")
	server.Stop()
	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	device.Disconnect(disconnectCtx)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
