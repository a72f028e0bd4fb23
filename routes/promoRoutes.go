package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/controllers"
	"github.com/ready24/shop-api/middlewares"
)

func PromoRoutes(server *gin.Engine) {
	server.GET("/promo/:code", controllers.ValidatePromoCode)

	admin := server.Group("/admin/promo", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreatePromoCode)
		admin.GET("", controllers.GetPromoCodes)
		admin.DELETE("/:code", controllers.DeletePromoCode)
	}
}
