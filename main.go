package main

import (
	"log"

	"classical-cipher-backend/config"
	"classical-cipher-backend/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log.Printf("Configuration loaded:%s", cfg)

	gin.SetMode(cfg.Server.GinMode)

	cipherHandler := handlers.NewCipherHandler(cfg.Limits.MaxTextLength)
	router := handlers.NewRouter(cipherHandler, cfg.CORS.AllowOrigins)

	log.Printf("Server starting on %s", cfg.Addr())
	log.Printf("API endpoints:")
	log.Printf("  GET  /api/v1/health                    - Health check")
	log.Printf("  GET  /api/v1/ciphers                   - List supported ciphers")
	log.Printf("  POST /api/v1/ciphers/:cipher/encrypt   - Encrypt text")
	log.Printf("  POST /api/v1/ciphers/:cipher/decrypt   - Decrypt text")
	log.Printf("  POST /api/v1/ciphers/:cipher/trace     - Step trace for animation")
	log.Printf("")
	log.Printf("Ciphers: additive, multiplicative, affine, autokey, vigenere, playfair, hill, railfence, keylessTransformation")

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
