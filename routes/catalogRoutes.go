package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/controllers"
	"github.com/ready24/shop-api/middlewares"
)

func CatalogRoutes(server *gin.Engine) {
	server.GET("/categories", controllers.GetCategories)
	server.GET("/category/:slug", controllers.GetCategory)
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:slug", controllers.GetProduct)
	server.GET("/search", controllers.SearchProducts)

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/category", controllers.CreateCategory)
		admin.POST("/tool", controllers.CreateTool)
		admin.POST("/product", controllers.CreateProduct)
		admin.POST("/product/:id/pictures", controllers.UploadProductPictures)
	}
}
