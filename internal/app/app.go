package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/abdulbasset-benz/misskitty-api/config"
	"github.com/abdulbasset-benz/misskitty-api/internal/controller"
	"github.com/abdulbasset-benz/misskitty-api/internal/infrastructure/storage"
	"github.com/abdulbasset-benz/misskitty-api/internal/infrastructure/tracing"
	appmiddleware "github.com/abdulbasset-benz/misskitty-api/internal/middleware"
	"github.com/abdulbasset-benz/misskitty-api/internal/repository"
	"github.com/abdulbasset-benz/misskitty-api/internal/service"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type App struct {
	DB     *gorm.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("misskitty-api")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	if app.Config.FrontendOrigin != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     []string{app.Config.FrontendOrigin},
			AllowCredentials: true,
		}))
	}
	e.Use(middleware.BodyLimit("20M"))

	e.Static("/uploads", app.Config.UploadDir)

	g := e.Group("/api")
	g.Use(appmiddleware.Logger)

	store, err := storage.CreateLocalFileStore(app.Config.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	productRepo := repository.CreateNewProductRepository(app.DB)
	adminRepo := repository.CreateNewAdminRepository(app.DB)

	productSvc := service.CreateNewProductService(productRepo, store)
	adminSvc := service.CreateNewAdminService(adminRepo, *app.Config)
	orderSvc := service.CreateNewOrderService(productRepo, *app.Config)

	if err := adminSvc.SeedAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin account")
	}

	adminGuard := appmiddleware.CreateAdminGuard(adminRepo, app.Config.JWTSecret)

	controller.CreateProductController(g, productSvc, adminGuard)
	controller.CreateAdminController(g, adminSvc, adminGuard)
	controller.CreateOrderController(g, orderSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
