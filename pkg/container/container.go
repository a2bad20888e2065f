package container

import (
	"context"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"cuadros-neon-backend/internal/config"
	"cuadros-neon-backend/internal/domains/catalog"
	"cuadros-neon-backend/internal/domains/catalog/handler"
	"cuadros-neon-backend/internal/domains/catalog/hybrid"
	"cuadros-neon-backend/internal/domains/catalog/job"
	catalogRepo "cuadros-neon-backend/internal/domains/catalog/repository"
	catalogService "cuadros-neon-backend/internal/domains/catalog/service"
	infraCache "cuadros-neon-backend/internal/infrastructure/cache"
	"cuadros-neon-backend/internal/infrastructure/database"
	"cuadros-neon-backend/internal/infrastructure/storage"
	"cuadros-neon-backend/pkg/cache"
	"cuadros-neon-backend/pkg/jwt"
	"cuadros-neon-backend/pkg/logger"
)

// Container es el DI container: todas las dependencias se construyen acá,
// en orden explícito, una sola vez al arrancar. Si algo obligatorio falla,
// la aplicación no levanta.
type Container struct {
	Config *config.Config

	// Infraestructura
	DB             *database.PostgresDB
	Cache          cache.Cache
	Storage        *storage.MinIOStorage
	ImageProcessor *storage.ImageProcessor
	JWTManager     *jwt.Manager
	AsynqClient    *asynq.Client

	// Dominio catálogo
	CatalogRepo    catalog.Repository
	ImageResolver  *catalog.ImageResolver
	Adapter        *catalog.Adapter
	CatalogService catalogService.CatalogService
	HybridSelector *hybrid.Selector

	// Handlers
	CatalogHandler *handler.CatalogHandler
	UploadHandler  *handler.UploadHandler
}

// NewContainer construye todo en etapas: config → infra → dominio → handlers.
func NewContainer() (*Container, error) {
	c := &Container{}
	ctx := context.Background()

	// ========================================
	// STEP 1: CONFIG
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbCfg)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: CACHE
	// ========================================
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			// Redis caída no es crítica: el catálogo sigue sin cache.
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: STORAGE + QUEUE + JWT
	// ========================================
	blobStorage, err := storage.NewMinIOStorage(storage.Config{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	c.Storage = blobStorage
	log.Println("✅ MinIO storage ready")

	c.ImageProcessor = storage.NewImageProcessor()
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// ========================================
	// STEP 5: DOMINIO CATÁLOGO
	// ========================================
	c.CatalogRepo = catalogRepo.NewPostgresRepository(db.Pool)
	c.ImageResolver = catalog.NewImageResolver(blobStorage, cfg.Catalog.SignedURLExpiry)
	c.Adapter = catalog.NewAdapter(c.ImageResolver)

	c.CatalogService = catalogService.NewCatalogService(
		c.CatalogRepo,
		c.Adapter,
		c.Cache,
		cfg.Catalog.CacheTTL,
		blobStorage,
		c.ImageProcessor,
		job.NewEnqueuer(c.AsynqClient),
	)

	c.HybridSelector = hybrid.NewSelector(
		c.CatalogService,
		cfg.Catalog.FetchTimeout,
		cfg.Catalog.FallbackEnabled,
	)

	// ========================================
	// STEP 6: HANDLERS
	// ========================================
	c.CatalogHandler = handler.NewCatalogHandler(c.CatalogService, c.HybridSelector)
	c.UploadHandler = handler.NewUploadHandler(c.CatalogService)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup cierra las conexiones en orden inverso.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Asynq client close failed: %v", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Println("✅ Container cleaned up")
}
