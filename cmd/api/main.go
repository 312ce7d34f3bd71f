package main

import (
	"context"
	"fmt"
	"os"

	"security-toolbox/config"
	"security-toolbox/internal/httpserver"
	"security-toolbox/pkg/discord"
	"security-toolbox/pkg/jwt"
	"security-toolbox/pkg/log"
)

// @title       Security Toolbox API
// @description Base64 encoding and decoding plus HS256 JWT generation and validation.
// @version     1.0.0
// @schemes     http
// @BasePath    /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Infof(ctx, "Starting Security Toolbox API (env=%s)...", cfg.Environment.Name)

	if cfg.JWT.SecretKey == "" {
		logger.Warn(ctx, "SECRET_KEY is not set: /jwt/generate and /jwt/validate will reject every request")
	}

	// Initialize Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		discordClient, err = discord.New(logger, discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server configuration
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		IdleTimeout:     cfg.HTTPServer.IdleTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,

		// Token signing
		JWTManager: jwt.New(jwt.Config{SecretKey: cfg.JWT.SecretKey}),

		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,

		// Monitoring & notification
		Discord: discordClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	if err := httpServer.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}
}
