package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"kioskopos/internal/config"
	"kioskopos/internal/handler"
	"kioskopos/internal/middleware"
	"kioskopos/internal/repository"
	"kioskopos/internal/service"
	"kioskopos/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, loc *time.Location) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	cashRepo := repository.NewCashRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	configRepo := repository.NewConfigRepository(db)
	cartStore := repository.NewCartStore(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)

	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, saleRepo)
	cartSvc := service.NewCartService(cartStore, productRepo)
	cashSvc := service.NewCashService(cashRepo, userRepo, loc)
	saleSvc := service.NewSaleService(saleRepo, productRepo, movementRepo, cashRepo, userRepo, cartSvc, dispatcher)
	movementSvc := service.NewMovementService(movementRepo, productRepo)
	configSvc := service.NewConfigService(configRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	cashH := handler.NewCashHandler(cashSvc)
	shiftsH := handler.NewShiftsHandler(cashSvc, configSvc)
	movementsH := handler.NewMovementsHandler(movementSvc)
	configH := handler.NewConfigHandler(configSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(middleware.RolCajero, middleware.RolAdministrador)
	adminOnly := middleware.RequireRole(middleware.RolAdministrador)

	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog — reads for everyone, writes for administrators
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/low-stock", anyRole, productsH.LowStock)
		v1.GET("/products/suggested-code", anyRole, productsH.SuggestedCode)
		v1.GET("/products/sold-last-7-days", anyRole, productsH.SoldLast7Days)
		v1.GET("/products/categories", anyRole, productsH.Categories)
		v1.GET("/products/:id", anyRole, productsH.Get)
		v1.POST("/products", anyRole, productsH.Create)
		v1.PUT("/products/:id", anyRole, productsH.Update)
		v1.DELETE("/products/:id", adminOnly, productsH.Delete)
		v1.POST("/products/:id/stock", adminOnly, productsH.AdjustStock)

		// Cart — per-operator, any authenticated role
		v1.GET("/cart", anyRole, cartH.Get)
		v1.DELETE("/cart", anyRole, cartH.Clear)
		v1.POST("/cart/items", anyRole, cartH.Add)
		v1.PUT("/cart/items/:productId/quantity", anyRole, cartH.UpdateQuantity)
		v1.PUT("/cart/items/:productId/price", anyRole, cartH.UpdatePrice)

		// Sales
		v1.POST("/sales", anyRole, salesH.CompleteSale)
		v1.GET("/sales", anyRole, salesH.List)
		v1.GET("/sales/:id", anyRole, salesH.Get)

		// Shifts
		v1.POST("/shifts/open", anyRole, shiftsH.Open)
		v1.POST("/shifts/close", anyRole, shiftsH.Close)
		v1.GET("/shifts/current", anyRole, shiftsH.Current)
		v1.GET("/shifts", adminOnly, shiftsH.History)
		v1.GET("/shifts/:id/report", anyRole, shiftsH.Report)

		// Cash ledger
		v1.POST("/cash/transactions", anyRole, cashH.AddTransaction)
		v1.GET("/cash/ledger", anyRole, cashH.Ledger)
		v1.GET("/cash/export", anyRole, cashH.ExportCSV)

		// Inventory movements
		v1.POST("/movements/income", anyRole, movementsH.RegisterIncome)
		v1.GET("/movements", anyRole, movementsH.List)
		v1.GET("/movements/summary", anyRole, movementsH.Summary)
		v1.GET("/movements/providers", anyRole, movementsH.Providers)
		v1.GET("/movements/categories", anyRole, movementsH.Categories)

		// Configuration
		v1.GET("/config", anyRole, configH.Get)
		v1.PUT("/config", adminOnly, configH.Update)

		// Users — administrators only
		users := v1.Group("/users", adminOnly)
		{
			users.POST("", authH.CreateUser)
			users.GET("", authH.ListUsers)
			users.DELETE("/:id", authH.DeactivateUser)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
