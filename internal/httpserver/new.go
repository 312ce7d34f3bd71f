package httpserver

import (
	"errors"
	"time"

	"security-toolbox/pkg/discord"
	pkgJWT "security-toolbox/pkg/jwt"
	"security-toolbox/pkg/log"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) maps the routes and serves until shutdown.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration

	// Token signing
	jwtMgr pkgJWT.Manager
	now    func() time.Time

	// Cross-origin
	corsOrigins []string

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Token signing. Now defaults to time.Now.
	JWTManager pkgJWT.Manager
	Now        func() time.Time

	CORSAllowedOrigins []string

	// External services, optional
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start listening. Use (*HTTPServer).Run() for that.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		idleTimeout:     cfg.IdleTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,

		jwtMgr: cfg.JWTManager,
		now:    now,

		corsOrigins: cfg.CORSAllowedOrigins,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.shutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	return nil
}
