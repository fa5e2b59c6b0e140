package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/velvet-storefront/config"
	"github.com/alimikegami/velvet-storefront/internal/controller"
	"github.com/alimikegami/velvet-storefront/internal/domain"
	circuitbreaker "github.com/alimikegami/velvet-storefront/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/velvet-storefront/internal/infrastructure/mailer"
	"github.com/alimikegami/velvet-storefront/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/velvet-storefront/internal/infrastructure/textgen"
	"github.com/alimikegami/velvet-storefront/internal/infrastructure/tracing"
	localmiddleware "github.com/alimikegami/velvet-storefront/internal/middleware"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/internal/service"
	"github.com/alimikegami/velvet-storefront/internal/task"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"
)

const taskRetention = time.Hour

type publisher interface {
	service.EventPublisher
	Close() error
}

// App owns every long-lived component. The optional hooks replace external
// dependencies and are left nil in production.
type App struct {
	Config  *config.Config
	Server  *echo.Echo
	Metrics *echo.Echo

	OpenStore     repository.DocumentRepositoryFactory
	TextGenerator service.TextGenerator
	Publisher     publisher
	Mailer        service.Mailer

	traceProvider *trace.TracerProvider
	scheduler     gocron.Scheduler
	storeSync     service.StoreSyncService
	tasks         *task.Manager
}

// Build wires the application and returns the HTTP handler without listening.
func (app *App) Build(ctx context.Context) (*echo.Echo, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(app.Config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = logger

	app.traceProvider, err = tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
		app.traceProvider = trace.NewTracerProvider()
	}
	tracer := app.traceProvider.Tracer(tracing.ServiceName)

	if app.OpenStore == nil {
		app.OpenStore = repository.OpenDocumentRepository
	}
	if app.Publisher == nil {
		app.Publisher = app.createPublisher()
	}
	if app.Mailer == nil {
		app.Mailer = mailer.CreateSMTPMailer()
	}
	if app.TextGenerator == nil {
		cb := circuitbreaker.CreateCircuitBreaker("gemini")
		app.TextGenerator = textgen.CreateGeminiClient(app.Config.GeminiConfig, cb)
	}
	app.tasks = task.CreateManager(app.Config.TaskTimeout, taskRetention)

	catalogRepo := repository.CreateCatalogRepository(domain.DefaultProducts(), domain.DefaultCategories())
	cartRepo := repository.CreateCartRepository()
	orderRepo := repository.CreateOrderRepository()
	userRepo := repository.CreateUserRepository()
	siteConfigRepo := repository.CreateSiteConfigRepository(domain.DefaultSiteConfig())
	blogRepo := repository.CreateBlogRepository(domain.DefaultBlogPosts())
	credentialRepo := repository.CreateCredentialRepository(app.Config.CredentialsFile)

	catalogSvc := service.CreateCatalogService(catalogRepo)
	cartSvc := service.CreateCartService(cartRepo, catalogRepo)
	orderSvc := service.CreateOrderService(orderRepo, cartRepo, catalogRepo, userRepo, siteConfigRepo, app.Publisher, app.Mailer, app.tasks)
	userSvc := service.CreateUserService(userRepo, siteConfigRepo, app.Mailer, *app.Config)
	siteConfigSvc := service.CreateSiteConfigService(siteConfigRepo)
	blogSvc := service.CreateBlogService(blogRepo)
	contentSvc := service.CreateContentService(app.TextGenerator, app.tasks)
	app.storeSync = service.CreateStoreSyncService(service.StoreSyncRepositories{
		Credentials: credentialRepo,
		Catalog:     catalogRepo,
		Orders:      orderRepo,
		Users:       userRepo,
		Blog:        blogRepo,
		SiteConfig:  siteConfigRepo,
	}, app.OpenStore, app.tasks)

	if err = userSvc.SeedAccounts(ctx, domain.DefaultAccounts()); err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}

	app.loadRemoteState(ctx)

	app.scheduler, err = gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = app.scheduler.NewJob(
		gocron.DurationJob(
			time.Minute,
		),
		gocron.NewTask(
			userSvc.PurgeExpiredRegistrations,
		),
	)
	if err != nil {
		return nil, err
	}

	_, err = app.scheduler.NewJob(
		gocron.DurationJob(
			10*time.Minute,
		),
		gocron.NewTask(
			func() {
				if n := app.tasks.EvictFinished(); n > 0 {
					log.Info().Str("component", "EvictFinished").Int("evicted", n).Msg("finished tasks evicted")
				}
			},
		),
	)
	if err != nil {
		return nil, err
	}

	_, err = app.scheduler.NewJob(
		gocron.DurationJob(
			time.Hour,
		),
		gocron.NewTask(
			cartSvc.PurgeStaleCarts,
		),
	)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Empty subsystem keeps metric names unprefixed.
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	g.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Ctx(c.Request().Context()).Debug().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	auth := localmiddleware.Authenticate(app.Config.JWTSecret, userRepo)
	account := g.Group("/account", auth)
	admin := g.Group("/admin", auth)

	controller.CreateCatalogController(g, admin, catalogSvc)
	controller.CreateCartController(g, cartSvc, orderSvc)
	controller.CreateOrderController(account, admin, orderSvc)
	controller.CreateUserController(g, account, admin, userSvc)
	controller.CreateSiteConfigController(g, admin, siteConfigSvc)
	controller.CreateStoreController(admin, app.storeSync)
	controller.CreateBlogController(g, admin, blogSvc)
	controller.CreateContentController(admin, contentSvc)

	app.Server = e

	return e, nil
}

// Start builds the app and serves the API and metrics until StopServer is called.
func (app *App) Start() error {
	if _, err := app.Build(context.Background()); err != nil {
		return err
	}

	app.scheduler.Start()

	app.Metrics = echo.New()
	app.Metrics.HideBanner = true
	app.Metrics.GET("/metrics", echoprometheus.NewHandler())

	var g errgroup.Group
	g.Go(func() error {
		return ignoreClosed(app.Metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)))
	})
	g.Go(func() error {
		return ignoreClosed(app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
	})

	return g.Wait()
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error
	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}
	if app.Metrics != nil {
		errList = append(errList, app.Metrics.Shutdown(ctx))
	}
	if app.scheduler != nil {
		errList = append(errList, app.scheduler.Shutdown())
	}
	if app.storeSync != nil {
		errList = append(errList, app.storeSync.Close(ctx))
	}
	if app.Publisher != nil {
		errList = append(errList, app.Publisher.Close())
	}
	if app.traceProvider != nil {
		errList = append(errList, app.traceProvider.Shutdown(ctx))
	}

	return errors.Join(errList...)
}

// loadRemoteState pulls the saved snapshot before serving. Failures keep the
// built-in defaults so the storefront still comes up.
func (app *App) loadRemoteState(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, app.Config.TaskTimeout)
	defer cancel()

	result, err := app.storeSync.LoadConfig(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "LoadConfig").Msg("starting with default site data")
		return
	}

	log.Info().Str("component", "LoadConfig").Str("source", result.Source).Msg(result.Message)
}

func (app *App) createPublisher() publisher {
	if app.Config.KafkaConfig.BrokerAddress == "" {
		return kafka.NoopPublisher{}
	}

	conn, err := kafka.CreateKafkaProducer(app.Config)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateKafkaProducer").Msg("order events disabled")
		return kafka.NoopPublisher{}
	}

	return kafka.CreatePublisher(conn)
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
