// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ats-backend/internal/auth"
	"ats-backend/internal/config"
	"ats-backend/internal/database"
	"ats-backend/internal/filestore"
	"ats-backend/internal/middleware"
	"ats-backend/internal/notify"
	"ats-backend/internal/store/gormstore"
	"ats-backend/internal/workflow"
)

// Server holds every dependency the route handlers share
type Server struct {
	Config *config.Config
	DB     *database.DBinstanceStruct
	Log    *zap.Logger

	Tokens    *auth.TokenService
	Blacklist auth.JwtBlacklistStore
	RateLimit ratelimit.Store
	Notifier  *notify.Dispatcher
	Files     *filestore.Store
	Queries   *gormstore.Store
	Workflow  *workflow.Coordinator

	redis   *redis.Client
	storage *filestore.CloudStorageClient
	stop    context.CancelFunc
}

// New wires the server dependencies. Redis backs the blacklist and the rate limiter when
// REDIS_URL is set, GCS keeps resumes when GCS_BUCKET is set, SMTP sends notifications when
// SMTP_HOST is set. Without them everything stays in process or in the database.
func New(ctx context.Context, cfg *config.Config, db *database.DBinstanceStruct, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	bgCtx, stop := context.WithCancel(context.Background())
	s := &Server{
		Config: cfg,
		DB:     db,
		Log:    log,
		Tokens: auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL),
		stop:   stop,
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		s.redis = redis.NewClient(opts)
		if err := s.redis.Ping(ctx).Err(); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.Blacklist = auth.NewRedisBlacklistStore(s.redis)
		log.Info("using redis for token blacklist and rate limit", zap.String("addr", opts.Addr))
	} else {
		s.Blacklist = auth.NewInMemoryBlacklistStore(bgCtx)
	}
	s.RateLimit = middleware.NewRateLimitStore(cfg.RateLimitPerSecond, s.redis)

	var mailer notify.Mailer
	if cfg.SMTPEnabled() {
		smtp, err := notify.NewSMTPMailer(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		mailer = smtp
	} else {
		log.Warn("SMTP_HOST not set, notifications are only logged")
		mailer = notify.NewLogMailer(log)
	}
	s.Notifier = notify.NewDispatcher(mailer, cfg.NotifyWorkers, cfg.NotifyQueueSize, log)

	if cfg.GCSBucket != "" {
		client, err := filestore.NewCloudStorageClient(ctx, cfg.GCSBucket)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.storage = client
		s.Files = filestore.New(db.DB, client)
		log.Info("storing resumes in cloud storage", zap.String("bucket", cfg.GCSBucket))
	} else {
		s.Files = filestore.New(db.DB, nil)
	}

	s.Queries = gormstore.New(db.DB)
	s.Workflow = workflow.NewCoordinator(s.Queries, s.Notifier, log)
	return s, nil
}

// HTTPServer builds the http.Server serving the routes on the configured port
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Close flushes queued notifications and releases the redis and storage clients.
// The database is left open, it belongs to the caller.
func (s *Server) Close(ctx context.Context) error {
	var errs []error
	if s.Notifier != nil {
		if err := s.Notifier.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("notifications not flushed: %w", err))
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.stop()
	return errors.Join(errs...)
}
