package routes

import (
	"github.com/SHSW-Syu/SSend/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProductRoutes(server *gin.Engine, db *gorm.DB) {
	server.GET("/api/products/:projectName", controllers.GetProjectProducts(db))
	server.POST("/api/products/images", controllers.UploadProductImages(db))
}
