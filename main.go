package main

import (
	"context"
	"os"
	"os/signal"

	"akplayer/cmd"
	"akplayer/config"
	"akplayer/logger"

	"go.uber.org/zap"
)

func main() {
	logger.Init("info")

	// load environment variables and configurations
	config.Load()
	logger.SetLevel(config.Env.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		zap.S().Errorf("%v", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
