package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS, request ids and the cipher
// routes.
func NewRouter(h *CipherHandler, allowOrigins []string) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	router.Use(cors.New(config))
	router.Use(RequestID())

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/ciphers", h.ListCiphers)

		cipher := api.Group("/ciphers/:cipher")
		{
			cipher.POST("/encrypt", h.Encrypt)
			cipher.POST("/decrypt", h.Decrypt)
			cipher.POST("/trace", h.Trace)
		}
	}

	return router
}
