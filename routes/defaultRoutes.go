package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
