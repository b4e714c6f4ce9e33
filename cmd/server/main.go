package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/okonu/portfolio-api/modules/contact"
	"github.com/okonu/portfolio-api/modules/waitlist"
	"github.com/okonu/portfolio-api/pkg/clientip"
	"github.com/okonu/portfolio-api/pkg/config"
	"github.com/okonu/portfolio-api/pkg/email"
	"github.com/okonu/portfolio-api/pkg/httpserver"
	"github.com/okonu/portfolio-api/pkg/logger"
	"github.com/okonu/portfolio-api/pkg/mongo"
	"github.com/okonu/portfolio-api/pkg/ratelimiter"
	"github.com/okonu/portfolio-api/pkg/redis"
	"github.com/okonu/portfolio-api/pkg/response"
)

type appConfig struct {
	Environment    string   `env:"APP_ENV" envDefault:"development"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://okonu.vercel.app,http://localhost:3000"`

	HTTP      httpserver.Config
	Mongo     mongo.Config
	Redis     redis.Config
	Email     email.Config
	RateLimit ratelimiter.Config
	Contact   contact.Config
	Waitlist  waitlist.Config
}

func (c appConfig) development() bool { return c.Environment == "development" }

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, "portfolio-api"))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	db, err := mongo.Database(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(disconnectCtx)
	}()

	repo := waitlist.NewRepository(db.Collection(cfg.Waitlist.Collection))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("waitlist indexes: %w", err)
	}

	sender, err := newSender(cfg, log)
	if err != nil {
		return err
	}

	limiter, closeStore, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	contactSvc := contact.NewService(sender, cfg.Contact, log)
	waitlistSvc := waitlist.NewService(repo, sender, cfg.Waitlist, log)

	router := newRouter(cfg, log, limiter, contactSvc, waitlistSvc)

	return httpserver.New(cfg.HTTP, log).Run(ctx, router)
}

// newSender picks the mail transport. Production requires Postmark
// credentials; development without them falls back to writing emails to disk
// so the full flow still works.
func newSender(cfg appConfig, log *slog.Logger) (email.Sender, error) {
	if cfg.Email.Configured() {
		return email.NewPostmarkSender(cfg.Email)
	}
	if !cfg.development() {
		return nil, fmt.Errorf("email transport: %w", email.ErrInvalidConfig)
	}
	log.Warn("postmark token not set, writing emails to disk",
		slog.String("dir", cfg.Email.DevOutputDir))
	return email.NewDevSender(cfg.Email.DevOutputDir), nil
}

// newLimiter builds the rate limiter, backed by Redis when a URL is
// configured and by process memory otherwise.
func newLimiter(ctx context.Context, cfg appConfig, log *slog.Logger) (*ratelimiter.TokenBucket, func(), error) {
	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		tb, err := ratelimiter.New(ratelimiter.NewRedisStore(client), cfg.RateLimit)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		log.Info("rate limiting backed by redis")
		return tb, func() { _ = client.Close() }, nil
	}

	store := ratelimiter.NewMemoryStore()
	tb, err := ratelimiter.New(store, cfg.RateLimit)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return tb, store.Close, nil
}

func newRouter(
	cfg appConfig,
	log *slog.Logger,
	limiter *ratelimiter.TokenBucket,
	contactSvc *contact.Service,
	waitlistSvc *waitlist.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(clientip.Middleware)
	r.Use(requestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Authorization"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusNotFound, response.ErrorBody{Error: "Route not found"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(ratelimiter.Middleware(limiter, func(r *http.Request) string {
			return clientip.FromContext(r.Context())
		}))

		contact.NewHandler(contactSvc, cfg.development()).Register(api)
		waitlist.NewHandler(waitlistSvc, cfg.development()).Register(api)

		api.Get("/test-cors", func(w http.ResponseWriter, r *http.Request) {
			response.JSON(w, http.StatusOK, map[string]string{
				"message": "CORS is working",
				"origin":  r.Header.Get("Origin"),
				"ip":      clientip.FromContext(r.Context()),
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]any{
			"status":      "healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.Environment,
			"cors":        cfg.AllowedOrigins,
		})
	})

	return r
}

// requestLogger emits one structured record per request after it completes.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("ip", clientip.FromContext(r.Context())),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
