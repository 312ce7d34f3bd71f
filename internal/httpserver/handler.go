package httpserver

import (
	codecHTTP "security-toolbox/internal/codec/delivery/http"
	codecUC "security-toolbox/internal/codec/usecase"
	"security-toolbox/internal/middleware"
	tokenHTTP "security-toolbox/internal/token/delivery/http"
	tokenUC "security-toolbox/internal/token/usecase"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "security-toolbox/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.discord)

	// Recovery first so that panics in the other middleware are caught too.
	srv.gin.Use(
		mw.Recovery(),
		mw.RequestID(),
		mw.Logger(),
		middleware.CORS(middleware.NewCORSConfig(srv.corsOrigins)),
	)

	// Liveness and health
	srv.gin.GET("/ping", srv.ping)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Usecases
	codecUsecase := codecUC.New(srv.l)
	tokenUsecase := tokenUC.New(srv.l, srv.jwtMgr, srv.now)

	// Handlers
	codecHandler := codecHTTP.New(srv.l, codecUsecase, srv.discord)
	tokenHandler := tokenHTTP.New(srv.l, tokenUsecase, srv.discord)

	// Routes
	codecHandler.RegisterRoutes(srv.gin)
	tokenHandler.RegisterRoutes(srv.gin)
}
