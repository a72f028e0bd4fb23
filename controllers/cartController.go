package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/initializers"
	"github.com/ready24/shop-api/models"
	"gorm.io/gorm"
)

// activeCart returns the user's active cart, creating one when none
// exists yet.
func activeCart(tx *gorm.DB, userId uint) (models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := tx.Where("user_id = ? AND active = ?", userId, true).First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, err
	}

	cart = models.ShoppingCart{UserID: userId, Active: true}
	if err := tx.Create(&cart).Error; err != nil {
		return cart, err
	}
	return cart, nil
}

// AddToCart puts a product into the user's active cart. A repeated add
// increments the existing line item instead of creating a second one.
func AddToCart(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var input struct {
		ProductID uint `json:"productId" binding:"required"`
		Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate product")
		}
		return
	}

	// Cart lookup and line upsert share one transaction so a retry after
	// a failed increment cannot leave a second line behind.
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := activeCart(tx, userId)
		if err != nil {
			return err
		}

		var item models.ShoppingCartProduct
		err = tx.Where("shopping_cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.ShoppingCartProduct{
				ShoppingCartID: cart.ID,
				ProductID:      product.ID,
				Quantity:       input.Quantity,
			}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		item.Quantity += input.Quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		log.Println("Add to cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add product to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": product.Name + " added to cart",
	})
}

// GetCart returns the active cart with its line items and the rounded
// total. Mirrors the storefront cart page, so a missing cart is created
// rather than reported.
func GetCart(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	cart, err := activeCart(initializers.DB, userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	result := initializers.DB.
		Preload("Items.Product").
		Preload("PromoCode").
		First(&cart, cart.ID)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":  cart,
		"total": cart.Total().StringFixed(2),
	})
}

// ApplyPromoCode attaches a promo code to the active cart. Expired or
// deactivated codes are rejected outright.
func ApplyPromoCode(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var promo models.PromoCode
	if err := initializers.DB.Where("code = ?", input.Code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Promo code not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch promo code")
		}
		return
	}

	if !promo.IsValid(time.Now()) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Promo code is invalid or has expired")
		return
	}

	var cart models.ShoppingCart
	err := initializers.DB.Where("user_id = ? AND active = ?", userId, true).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgNoActiveCart)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	cart.PromoCodeID = &promo.ID
	if err := initializers.DB.Save(&cart).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to apply promo code")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Promo code applied",
		"discount": promo.Discount,
	})
}
