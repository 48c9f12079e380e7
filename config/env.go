package config

import (
	"os"
	"time"

	"akplayer/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

func LoadEnv() error {
	if value := os.Getenv("AUTH_ENDPOINT"); value != "" {
		Env.AuthEndpoint = value
	}
	if value := os.Getenv("PLAYER_ENDPOINT"); value != "" {
		Env.PlayerEndpoint = value
	}
	if value := os.Getenv("AUTH_KEY"); value != "" {
		Env.AuthKey = value
	}
	if value := os.Getenv("USER_AGENT"); value != "" {
		Env.UserAgent = value
	}
	if value := os.Getenv("HTTP_TIMEOUT"); value != "" {
		if timeout, err := time.ParseDuration(value); err == nil && timeout > 0 {
			Env.HTTPTimeout = timeout
		} else {
			zap.S().Warnf("HTTP_TIMEOUT env is not a valid duration, using default %s", Env.HTTPTimeout)
		}
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	return nil
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		AuthEndpoint:   "https://tempapi.classx.co.in/get/fetchVideoDetailsById",
		PlayerEndpoint: "https://player.akamai.net.in/secure-player",
		AuthKey:        "appxapi",
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",

		HTTPTimeout: 30 * time.Second,
		OutputDir:   ".",

		LogLevel: "info",
	}
}

// Load reads an optional .env file and overlays
// the process environment on top of the defaults.
func Load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.S().Warnf("failed to load .env file: %v", err)
	}
	if err := LoadEnv(); err != nil {
		zap.S().Fatalf("failed to load env: %v", err)
	}
}
