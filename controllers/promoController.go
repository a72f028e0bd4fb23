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

func CreatePromoCode(ctx *gin.Context) {
	var promo models.PromoCode
	if err := ctx.ShouldBindJSON(&promo); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&promo).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create promo code", err)
		return
	}

	ctx.JSON(http.StatusCreated, promo)
}

// GetPromoCodes lists all codes for the admin screen. Codes whose
// expiry has passed get their Active flag flipped and persisted on the
// way out, so the listing reflects reality.
func GetPromoCodes(ctx *gin.Context) {
	var promos []models.PromoCode
	if result := initializers.DB.Find(&promos); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promo codes", result.Error)
		return
	}

	now := time.Now()
	for i := range promos {
		if promos[i].ExpireCheck(now) {
			if err := initializers.DB.Save(&promos[i]).Error; err != nil {
				log.Println("Error persisting expired promo code:", err)
			}
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"promoCodes": promos})
}

// ValidatePromoCode reports whether a code is currently applicable.
func ValidatePromoCode(ctx *gin.Context) {
	code := ctx.Param("code")

	var promo models.PromoCode
	if err := initializers.DB.Where("code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Promo code not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promo code", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":     promo.Code,
		"valid":    promo.IsValid(time.Now()),
		"discount": promo.Discount,
	})
}

func DeletePromoCode(ctx *gin.Context) {
	code := ctx.Param("code")

	// Hard delete: a soft-deleted row would keep occupying the unique
	// index on code and block re-creating the same code later.
	result := initializers.DB.Unscoped().Where("code = ?", code).Delete(&models.PromoCode{})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete promo code", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Promo code not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promo code deleted successfully."})
}
