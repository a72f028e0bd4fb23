package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/controllers"
	"github.com/ready24/shop-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.POST("", controllers.AddToCart)
		cart.GET("", controllers.GetCart)
		cart.POST("/promo", controllers.ApplyPromoCode)
	}
}
