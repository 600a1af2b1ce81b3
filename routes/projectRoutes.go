package routes

import (
	"github.com/SHSW-Syu/SSend/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProjectRoutes(server *gin.Engine, db *gorm.DB) {
	server.POST("/submit", controllers.SubmitProject(db))
}
