package routes

import (
	"github.com/SHSW-Syu/SSend/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OrderRoutes(server *gin.Engine, db *gorm.DB) {
	server.POST("/receive", controllers.ReceiveOrder(db))
	server.GET("/api/orders/:orderId", controllers.GetOrderById(db))
}
