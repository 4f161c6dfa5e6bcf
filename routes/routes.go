package routes

import (
	"net/http"

	"marketplace/configs"
	"marketplace/controllers"
	"marketplace/entity"
	"marketplace/middlewares"
	"marketplace/repository"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger zerolog.Logger) {
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}

	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Recovery())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	identity := utils.NewJWTIdentity(cfg.JWTSecret, cfg.JWTTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	productRepo := repository.NewProductRepository(db)
	imageRepo := repository.NewProductImageRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	lineRepo := repository.NewOrderLineRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, identity)
	profileSvc := services.NewProfileService(userRepo)
	saleSvc := services.NewSaleService(providerRepo, lineRepo, orderRepo, userRepo, productRepo, imageRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, lineRepo, cartRepo, productRepo)
	productSvc := services.NewProductService(productRepo, imageRepo)

	// Controllers
	userCtrl := controllers.NewUserController(authSvc, profileSvc)
	saleCtrl := controllers.NewSaleController(saleSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	productCtrl := controllers.NewProductController(productSvc)

	authed := middlewares.AuthMiddleware(identity)

	api := r.Group("/api")

	// Auth (public)
	api.POST("/auth/login", userCtrl.Login)

	u := api.Group("/usuarios")
	{
		u.POST("/registro", userCtrl.Register)
		u.GET("/verificar-email", userCtrl.CheckEmail)
		u.GET("/perfil", authed, userCtrl.GetProfile)
		u.PUT("/perfil", authed, userCtrl.UpdateProfile)
	}

	// Provider (PROVEEDOR only)
	prov := api.Group("/proveedor", middlewares.AuthMiddleware(identity, entity.RoleProvider))
	{
		prov.GET("/ventas", saleCtrl.List)
	}

	// Catalog (public)
	api.GET("/productos", productCtrl.List)
	api.GET("/productos/:id", productCtrl.Get)

	cart := api.Group("/carrito", authed)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	orders := api.Group("/pedidos", authed)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/mis-pedidos", orderCtrl.ListMine)
	}
}
