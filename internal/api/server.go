package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/a957924278/mogutouERP-go/docs"
	"github.com/a957924278/mogutouERP-go/internal/app/auth"
	"github.com/a957924278/mogutouERP-go/internal/app/config"
	"github.com/a957924278/mogutouERP-go/internal/app/dsn"
	"github.com/a957924278/mogutouERP-go/internal/app/handler"
	"github.com/a957924278/mogutouERP-go/internal/app/ledger"
	"github.com/a957924278/mogutouERP-go/internal/app/middleware"
	"github.com/a957924278/mogutouERP-go/internal/app/repository"
	"github.com/a957924278/mogutouERP-go/internal/app/service"
)

// StartServer - сборка зависимостей и запуск HTTP сервера
func StartServer() {
	logrus.Info("Application start up")

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	jwtService := auth.NewJWTService(
		conf.JWTSecret,
		conf.JWTAccessTokenExpire,
		conf.JWTRefreshTokenExpire,
	)

	commodityLedger := ledger.NewLedger()
	authService := service.NewAuthService(repo, jwtService)
	customerOrders := service.NewCustomerOrderService(repo, commodityLedger)
	purchaseOrders := service.NewPurchaseOrderService(repo, commodityLedger)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	h := handler.NewHandler(repo, authService, customerOrders, purchaseOrders, authMiddleware)

	r := NewRouter(h)

	serverAddress := fmt.Sprintf("%s:%d", conf.ServiceHost, conf.ServicePort)
	logrus.Infof("Starting HTTP server on %s", serverAddress)
	if err := r.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Application terminated")
}

// NewRouter - маршруты сервиса
func NewRouter(h *handler.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.String(200, "OK") })

	// Авторизация
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.RegisterUser)
		authGroup.POST("/login", h.LoginUser)
		authGroup.POST("/refresh", h.RefreshToken)
		authGroup.GET("/me", h.AuthMiddleware.RequireAuth(), h.GetCurrentUser)
		authGroup.PUT("/password", h.AuthMiddleware.RequireAuth(), h.UpdatePassword)
		authGroup.DELETE("/users/:id", h.AuthMiddleware.RequireAuth(), h.AuthMiddleware.RequireAdmin(), h.DeleteUser)
	}

	// Каталог товаров (чтение — любой сотрудник, изменение — администратор)
	commodities := r.Group("/api/commodities")
	commodities.Use(h.AuthMiddleware.RequireAuth())
	{
		commodities.GET("", h.GetCommodities)
		// Должен быть определён раньше /:id, иначе "admin" уйдёт в параметр id
		commodities.GET("/admin", h.AuthMiddleware.RequireAdmin(), h.GetCommoditiesForAdmin)
		commodities.GET("/:id", h.GetCommodity)
		commodities.POST("", h.AuthMiddleware.RequireAdmin(), h.CreateCommodity)
		commodities.PUT("/:id", h.AuthMiddleware.RequireAdmin(), h.UpdateCommodity)
		commodities.DELETE("/:id", h.AuthMiddleware.RequireAdmin(), h.DeleteCommodity)
	}

	// Клиентские заказы (только администратор)
	customerOrders := r.Group("/api/customer-orders")
	customerOrders.Use(h.AuthMiddleware.RequireAuth(), h.AuthMiddleware.RequireAdmin())
	{
		customerOrders.POST("", h.CreateCustomerOrder)
		customerOrders.GET("", h.GetCustomerOrders)
		customerOrders.PUT("/:id/confirm", h.ConfirmCustomerOrder)
		customerOrders.DELETE("/:id", h.DeleteCustomerOrder)
	}

	// Заказы поставщику (только администратор)
	purchaseOrders := r.Group("/api/purchase-orders")
	purchaseOrders.Use(h.AuthMiddleware.RequireAuth(), h.AuthMiddleware.RequireAdmin())
	{
		purchaseOrders.POST("", h.CreatePurchaseOrder)
		purchaseOrders.GET("", h.GetPurchaseOrders)
		purchaseOrders.PUT("/:id/confirm", h.ConfirmPurchaseOrder)
		purchaseOrders.DELETE("/:id", h.DeletePurchaseOrder)
	}

	// Swagger документация
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
