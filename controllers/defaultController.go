package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/initializers"
	"github.com/ready24/shop-api/models"
)

// GetHome is the storefront index: the endpoint directory plus the
// category list for navigation, fetched per request.
func GetHome(ctx *gin.Context) {
	message := `Welcome to the Ready24 API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

CATALOG
- GET "/" - Endpoint directory and category list
- GET "/categories" - List categories
- GET "/category/{slug}" - Category with products and tool filters
- GET "/product/{slug}" - Product details
- GET "/search?q=" - Search products by name

CART
- POST "/cart" - Add a product to the active cart
- GET "/cart" - View the active cart and its total
- POST "/cart/promo" - Apply a promo code

CHECKOUT
- GET "/checkout" - Addresses and cart summary
- POST "/checkout" - Select delivery address
- POST "/checkout/payment" - Finalize the order

PROFILE
- GET "/profile" - User profile and addresses
- PUT "/profile" - Edit profile
- POST "/profile/address" - Add a delivery address`

	var categories []models.Category
	if result := initializers.DB.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    message,
		"categories": categories,
	})
}
