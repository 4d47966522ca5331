package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"techstore-admin/config"
	"techstore-admin/controllers"
	"techstore-admin/middleware"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg, ctrl.Store.Count)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(ctrl.Log), metrics.Handler())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	session := middleware.RequireSession(ctrl.Auth)

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)

		// Rute otentikasi
		api.POST("/login", ctrl.Login)
		api.POST("/logout", session, ctrl.Logout)
		api.GET("/me", session, ctrl.Me)
	}

	catalog := api.Group("")
	if cfg.AuthRequired {
		catalog.Use(session)
	}
	{
		catalog.GET("/stats", ctrl.GetStats)
		catalog.GET("/charts", ctrl.GetCharts)

		// Rute produk
		catalog.GET("/products", middleware.ParsePage(), ctrl.GetProducts)
		catalog.GET("/products/best-selling", ctrl.GetBestSelling)
		catalog.POST("/products", ctrl.CreateProduct)
		catalog.GET("/products/:id", ctrl.GetProduct)
		catalog.PATCH("/products/:id", ctrl.UpdateProduct)
		catalog.PUT("/products/:id", ctrl.UpdateProduct)
		catalog.DELETE("/products/:id", ctrl.DeleteProduct)
		catalog.POST("/products/:id/image", ctrl.UploadImage)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
