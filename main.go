package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/devfolio/devfolio/backend/go-services/handlers"
	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/contact"
	"github.com/devfolio/devfolio/backend/go-services/internal/content"
	"github.com/devfolio/devfolio/backend/go-services/internal/database"
	"github.com/devfolio/devfolio/backend/go-services/internal/storage"
	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s redis=%v mongo=%v minio=%v", cfg.Storage.Backend, cfg.Redis.Host != "", cfg.MongoDB.URI != "", cfg.MinIO.Endpoint != "")

	backend, cleanup := selectBackend(cfg)
	if cleanup != nil {
		defer cleanup()
	}

	contentStore := content.NewStore(backend, content.StaticDefaults{})
	contactStore := contact.NewStore(backend)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// the API contract promises 405 for a wrong method, not gin's default 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	})

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when the storage backend answers
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]any{"backend": cfg.Storage.Backend}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if _, err := backend.Read(ctx, "content"); err != nil {
			deps["storage"] = false
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		deps["storage"] = true
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Register API handlers
	root := r.Group("/")
	handlers.NewAuthHandler(cfg).Register(root)
	handlers.NewContentHandler(contentStore).Register(root)
	handlers.NewContactHandler(contactStore).Register(root)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting portfolio service on %s (storage backend: %s)", addr, cfg.Storage.Backend)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// selectBackend builds the storage backend named by configuration. The
// returned cleanup closes any owned connection and may be nil.
func selectBackend(cfg *config.Config) (storage.Backend, func()) {
	ctx := context.Background()

	switch cfg.Storage.Backend {
	case "", "file":
		return storage.NewFileBackend(cfg.Storage.DataDir), nil

	case "remote":
		if cfg.Remote.StoreID == "" {
			logger.Fatalf("STORAGE_BACKEND=remote requires REMOTE_CONFIG_STORE_ID")
		}
		if cfg.Remote.Token == "" {
			logger.Warnf("REMOTE_CONFIG_TOKEN not set; remote backend is read-only until one is provided")
		}
		return storage.NewRemoteBackend(cfg.Remote.ReadURL, cfg.Remote.APIURL, cfg.Remote.StoreID, cfg.Remote.Token), nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		}
		logger.Infof("Connected to Redis for storage: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		return storage.NewRedisBackend(client, "devfolio:"), func() { _ = client.Close() }

	case "mongo":
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		var client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		for attempt := 2; err != nil && attempt <= maxAttempts; attempt++ {
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt-1, maxAttempts, err)
			time.Sleep(backoff)
			backoff *= 2
			client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		}
		if err != nil {
			logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
		}
		col := client.Database(cfg.MongoDB.Database).Collection("documents")
		return storage.NewMongoBackend(col), func() { _ = client.Disconnect(ctx) }

	case "minio":
		b, err := storage.NewMinIOBackend(storage.MinIOOptions{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
		})
		if err != nil {
			logger.Fatalf("failed to initialize MinIO backend: %v", err)
		}
		return b, nil

	default:
		logger.Fatalf("unknown STORAGE_BACKEND %q (expected file, remote, redis, mongo or minio)", cfg.Storage.Backend)
		return nil, nil
	}
}
