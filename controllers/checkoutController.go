package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/initializers"
	"github.com/ready24/shop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func findActiveCart(userId uint) (models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := initializers.DB.
		Preload("Items.Product").
		Preload("PromoCode").
		Where("user_id = ? AND active = ?", userId, true).
		First(&cart).Error
	return cart, err
}

// GetCheckoutSummary returns the user's addresses next to the active
// cart's line items. Unlike the cart page, checkout never creates a
// cart: without one there is nothing to check out.
func GetCheckoutSummary(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	cart, err := findActiveCart(userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgNoActiveCart)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	var addresses []models.Address
	if result := initializers.DB.Where("user_id = ?", userId).Find(&addresses); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch addresses")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"addresses": addresses,
		"items":     cart.Items,
	})
}

// SelectDeliveryAddress binds one of the user's addresses to the order
// and returns the priced summary: cart total, promo discount and the
// payable amount.
func SelectDeliveryAddress(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var input struct {
		AddressID uint `json:"addressId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var address models.Address
	err := initializers.DB.Where("id = ? AND user_id = ?", input.AddressID, userId).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch address")
		}
		return
	}

	cart, err := findActiveCart(userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgNoActiveCart)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	total := cart.Total()
	discount := decimal.Zero
	if cart.PromoCode != nil && cart.PromoCode.IsValid(time.Now()) {
		discount = decimal.NewFromInt(int64(cart.PromoCode.Discount))
	}
	payable := total.Sub(discount)
	if payable.IsNegative() {
		payable = decimal.Zero
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":    cart.Items,
		"address":  address,
		"total":    total.StringFixed(2),
		"discount": discount.StringFixed(2),
		"payable":  payable.StringFixed(2),
	})
}

// CompletePayment finalizes the checkout. No payment provider is
// involved, the cart is simply deactivated. The conditional update makes
// the flip a one-shot: once inactive, a second call affects no rows and
// reports 404.
func CompletePayment(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	result := initializers.DB.Model(&models.ShoppingCart{}).
		Where("user_id = ? AND active = ?", userId, true).
		Update("active", false)

	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to complete checkout")
		return
	}

	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgNoActiveCart)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order placed successfully."})
}
