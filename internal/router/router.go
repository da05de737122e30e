package router

import (
	"github.com/365take-collab/motefuku/config"
	"github.com/365take-collab/motefuku/internal/app/controller"
	"github.com/365take-collab/motefuku/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	templateController   *controller.TemplateController
	productController    *controller.ProductController
	brandStyleController *controller.BrandStyleController
	emailController      *controller.EmailController
	checkoutController   *controller.CheckoutController
	config               *config.Config
}

func NewRouter(
	templateController *controller.TemplateController,
	productController *controller.ProductController,
	brandStyleController *controller.BrandStyleController,
	emailController *controller.EmailController,
	checkoutController *controller.CheckoutController,
	cfg *config.Config,
) *Router {
	return &Router{
		templateController:   templateController,
		productController:    productController,
		brandStyleController: brandStyleController,
		emailController:      emailController,
		checkoutController:   checkoutController,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	// ヘルスチェック
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "メンズファッション提案サービス API",
			"status":  "ok",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
		})
	})

	// 静的ファイルの配信（特典PDFなど）
	router.Static("/static", r.config.App.StaticDir)

	api := router.Group("/api")
	{
		templates := api.Group("/templates")
		{
			templates.GET("", r.templateController.ListTemplates)
			templates.GET("/:template_id", r.templateController.GetTemplateByID)
		}

		products := api.Group("/products")
		{
			products.GET("/search", r.productController.SearchProducts)
			products.GET("/recommend", r.productController.RecommendProducts)
			products.GET("/:product_id", r.productController.GetProductByID)
			products.GET("/:product_id/related", r.productController.GetRelatedProducts)
		}

		brandStyle := api.Group("/brand-style")
		{
			brandStyle.GET("/match", r.brandStyleController.MatchBrandStyle)
			brandStyle.GET("/styles", r.brandStyleController.ListBrandStyles)
		}

		email := api.Group("/email")
		{
			email.POST("/register", r.emailController.RegisterEmail)
		}

		checkout := api.Group("/checkout")
		{
			checkout.POST("/upsell", r.checkoutController.PurchaseUpsell)
			checkout.GET("/downloads/:offer_id", r.checkoutController.DownloadUpsell)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
