package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/lifedash/internal/auth"
	"github.com/2beens/lifedash/internal/config"
	"github.com/2beens/lifedash/internal/db"
	"github.com/2beens/lifedash/internal/finance"
	"github.com/2beens/lifedash/internal/gcal"
	"github.com/2beens/lifedash/internal/gym"
	"github.com/2beens/lifedash/internal/middleware"
	"github.com/2beens/lifedash/internal/review"
	"github.com/2beens/lifedash/internal/stocks"
	"github.com/2beens/lifedash/internal/study"
	"github.com/2beens/lifedash/internal/tasks"
	"github.com/2beens/lifedash/internal/telemetry/metrics"
	"github.com/2beens/lifedash/internal/telemetry/tracing"
	"github.com/2beens/lifedash/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	stocksClient *stocks.Client
	gcalTokens   *gcal.TokenManager
	gcalLimiter  *gcal.RateLimiter
	gcalSyncer   *gcal.Syncer
	gcalRepo     *gcal.Repo
	tasksRepo    *tasks.Repo

	// cancels background jobs (session cleanup, calendar sync)
	stopBackground context.CancelFunc

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool

	AdminUsername     string
	AdminPasswordHash string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	AlphaVantageAPIKey string
	TwelveDataAPIKey   string
}

func (p NewServerParams) dbParams() db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DBHost:         p.Config.PostgresHost,
		DBPort:         p.Config.PostgresPort,
		DBUser:         p.Config.PostgresUser,
		DBPassword:     p.DBPassword,
		DBName:         p.Config.PostgresDBName,
		TracingEnabled: p.HoneycombTracingEnabled,
	}
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	sessionTTL, err := params.Config.LoginSessionTTLDuration()
	if err != nil {
		return nil, fmt.Errorf("login session ttl: %w", err)
	}

	if params.Config.RunMigrations {
		if err := db.Migrate(params.dbParams()); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Debugln("db migrations done")
	}

	dbPool, err := db.NewDBPool(ctx, params.dbParams())
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry(
		prometheus.Labels{"env": params.Config.Environment},
		pgxpoolCollector,
	)
	metricsManager := metrics.NewManager("lifedash", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.NewUsersRepo(dbPool), sessionTTL, rdb)
	if params.AdminUsername != "" && params.AdminPasswordHash != "" {
		if _, err := authService.EnsureUser(ctx, params.AdminUsername, params.AdminPasswordHash); err != nil {
			return nil, fmt.Errorf("ensure admin user: %w", err)
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "lifedash-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   30 * time.Second,
	}

	stocksClient := stocks.NewClient(stocks.NewRepo(dbPool), metricsManager)
	if params.AlphaVantageAPIKey != "" {
		stocksClient.AddProvider(
			stocks.NewAlphaVantage(params.Config.AlphaVantageBaseURL, params.AlphaVantageAPIKey, tracedHttpClient),
			params.Config.AlphaVantageRequestsPerMin,
		)
	}
	if params.TwelveDataAPIKey != "" {
		stocksClient.AddProvider(
			stocks.NewTwelveData(params.Config.TwelveDataBaseURL, params.TwelveDataAPIKey, tracedHttpClient),
			params.Config.TwelveDataRequestsPerMin,
		)
	}
	if stocksClient.ProvidersCount() == 0 {
		log.Warnln("no stock price providers configured, only cached prices will be served")
	}

	tasksRepo := tasks.NewRepo(dbPool)
	gcalRepo := gcal.NewRepo(dbPool)
	gcalTokens := gcal.NewTokenManager(gcal.OAuthConfig{
		ClientID:     params.GoogleClientID,
		ClientSecret: params.GoogleClientSecret,
		RedirectURL:  params.GoogleRedirectURL,
	}, gcalRepo, tracedHttpClient)
	gcalLimiter := gcal.NewRateLimiter(gcal.DefaultRateLimiterConfig())
	gcalSyncer := gcal.NewSyncer(
		gcalRepo,
		gcal.NewGoogleCalendar(gcalTokens, gcalLimiter, ""),
		tasksRepo,
		metricsManager,
	)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(sessionTTL, rdb),

		stocksClient: stocksClient,
		gcalTokens:   gcalTokens,
		gcalLimiter:  gcalLimiter,
		gcalSyncer:   gcalSyncer,
		gcalRepo:     gcalRepo,
		tasksRepo:    tasksRepo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "lifedash")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS").Name("health")

	// login is rate limited per client ip
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authHandler := auth.NewHandler(s.authService)
	loginRouter := r.PathPrefix("/a").Subrouter()
	loginRouter.Use(middleware.RateLimit(reqRateLimiter, "auth", s.config.LoginRateLimitAllowedPerMin, s.metricsManager))
	loginRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	loginRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")

	gym.NewHandler(gym.NewService(gym.NewRepo(s.dbPool), s.metricsManager)).SetupRoutes(r)
	study.NewHandler(study.NewService(study.NewRepo(s.dbPool), s.metricsManager)).SetupRoutes(r)
	review.NewHandler(review.NewService(review.NewRepo(s.dbPool))).SetupRoutes(r)
	tasks.NewHandler(tasks.NewService(s.tasksRepo)).SetupRoutes(r)
	finance.NewHandler(finance.NewService(finance.NewRepo(s.dbPool))).SetupRoutes(r)
	stocks.NewHandler(s.stocksClient).SetupRoutes(r)
	gcal.NewHandler(
		s.gcalTokens,
		s.gcalSyncer,
		s.gcalRepo,
		s.config.FrontendURL,
		s.config.GCalSyncWindowDays,
	).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker, middleware.PublicPaths...)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.FrontendURL))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitBody(middleware.DefaultMaxBodyBytes))

	return r, nil
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	DB      bool   `json:"db"`
	Redis   bool   `json:"redis"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:  "ok",
		Version: s.versionInfo,
		DB:      s.dbPool.Ping(ctx) == nil,
		Redis:   s.redisClient.Ping(ctx).Err() == nil,
	}
	status := http.StatusOK
	if !resp.DB {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	pkg.SendJsonResponse(w, status, resp)
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.startBackgroundJobs(ctx)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) startBackgroundJobs(ctx context.Context) {
	ctx, s.stopBackground = context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(8 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.authService.ScanAndClean(ctx)
			}
		}
	}()

	s.gcalLimiter.Start()
	if !s.config.GCalSyncEnabled {
		log.Debugln("gcal: periodic sync disabled")
		return
	}
	if !s.gcalTokens.Configured() {
		log.Warnln("gcal: periodic sync enabled, but google oauth client is not configured")
		return
	}

	interval, err := s.config.GCalSyncIntervalDuration()
	if err != nil {
		log.Errorf("gcal: invalid sync interval, periodic sync off: %s", err)
		return
	}
	go s.gcalSyncer.RunPeriodic(ctx, interval, s.config.GCalSyncWindowDays)
	log.Debugf("gcal: periodic sync every %s", interval)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.stopBackground != nil {
		s.stopBackground()
	}
	s.gcalLimiter.Stop()
	log.Trace("gcal rate limiter stopped ...")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
