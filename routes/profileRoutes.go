package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/controllers"
	"github.com/ready24/shop-api/middlewares"
)

func ProfileRoutes(server *gin.Engine) {
	profile := server.Group("/profile", middlewares.RequireAuth())
	{
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
		profile.POST("/address", controllers.AddAddress)
	}
}
