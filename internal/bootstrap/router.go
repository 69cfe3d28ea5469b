package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/config"
	httpapi "github.com/gavinjunior/portfolio-backend/internal/api/http"
	"github.com/gavinjunior/portfolio-backend/internal/api/http/middleware"
	authhttp "github.com/gavinjunior/portfolio-backend/internal/auth/http"
	authmw "github.com/gavinjunior/portfolio-backend/internal/auth/middleware"
	authsvc "github.com/gavinjunior/portfolio-backend/internal/auth/service"
	contacthttp "github.com/gavinjunior/portfolio-backend/internal/contact/http"
	contactsvc "github.com/gavinjunior/portfolio-backend/internal/contact/service"
	"github.com/gavinjunior/portfolio-backend/internal/mail"
	"github.com/gavinjunior/portfolio-backend/internal/projects/cache"
	projectshttp "github.com/gavinjunior/portfolio-backend/internal/projects/http"
	"github.com/gavinjunior/portfolio-backend/internal/projects/repository"
	projectsvc "github.com/gavinjunior/portfolio-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Logger      *zap.Logger

	// Projects is nil when MONGODB_URI is unset.
	Projects *mongo.Collection
	// Redis is nil when caching is disabled.
	Redis *redis.Client
	Mail  mail.Sender
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	cfg := dep.Config
	logger := dep.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		logger.Warn("invalid TRUSTED_PROXIES; trusting no proxy", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(logger.Named("http")))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	deps := map[string]httpapi.Pinger{"mongo": nil, "redis": nil}

	var store projectsvc.Store
	if dep.Projects != nil {
		repo := repository.NewProjectRepository(dep.Projects)
		store = repo
		deps["mongo"] = repo
	}

	var listCache projectsvc.ListCache
	if dep.Redis != nil {
		c := cache.NewListCache(dep.Redis, cfg.Cache.TTL)
		listCache = c
		deps["redis"] = c
	}

	httpapi.NewHealthHandler(dep.ServiceName, cfg.App.Version, deps).RegisterRoutes(r)

	api := r.Group("/api")

	authhttp.New(authsvc.NewIssuer(cfg.Auth), logger.Named("auth")).Register(api)

	projectService := projectsvc.NewProjectService(store, listCache, logger.Named("projects"))
	projectshttp.New(projectService, logger.Named("projects")).
		Register(api, authmw.RequireBearer(cfg.Auth.SecretToken))

	from, to := cfg.Mail.User, cfg.Mail.Recipient
	if cfg.Mail.Transport == config.MailTransportConsole {
		from, to = orDefault(from, "portfolio@localhost"), orDefault(to, "owner@localhost")
	}
	relay := contactsvc.NewRelay(dep.Mail, from, to, logger.Named("contact"))
	contacthttp.New(relay, logger.Named("contact")).
		Register(api, middleware.ClientRateLimit(cfg.Contact.RatePerMinute, cfg.Contact.Burst))

	return r
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
