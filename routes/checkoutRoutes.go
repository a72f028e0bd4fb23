package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/controllers"
	"github.com/ready24/shop-api/middlewares"
)

func CheckoutRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout", middlewares.RequireAuth())
	{
		checkout.GET("", controllers.GetCheckoutSummary)
		checkout.POST("", controllers.SelectDeliveryAddress)
		checkout.POST("/payment", controllers.CompletePayment)
	}
}
