package routes

import (
	"github.com/Adarsh-736/CurioKart/controllers"
	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Middleware must be attached before the routes are registered.
func SetupRouter(h *controllers.Handler) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	api := router.Group("/api")
	{
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)
		api.GET("/user/:uid", h.GetUser)
		api.POST("/create_order", h.CreateOrder)
		api.GET("/payment/status", h.PaymentStatus)
		api.GET("/health", h.HealthCheck)
	}

	return router
}
