package models

import "time"

type EnvConfig struct {
	AuthEndpoint   string
	PlayerEndpoint string
	AuthKey        string
	UserAgent      string

	HTTPTimeout time.Duration
	OutputDir   string

	LogLevel string
}
