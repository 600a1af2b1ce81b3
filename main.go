package main

import (
	"log"
	"os"
	"time"

	"github.com/SHSW-Syu/SSend/initializers"
	"github.com/SHSW-Syu/SSend/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	initializers.LoadEnv()
	db := initializers.ConnectToDB()
	initializers.SyncDatabase(db)

	server := gin.Default()

	allowedOrigin := os.Getenv("CORS_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins: []string{allowedOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, db)
	routes.ProjectRoutes(server, db)
	routes.OrderRoutes(server, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3003"
	}
	if err := server.Run(":" + port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
