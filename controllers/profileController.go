package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/initializers"
	"github.com/ready24/shop-api/models"
	"gorm.io/gorm"
)

// GetProfile returns the authenticated user and their saved addresses.
func GetProfile(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
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
		"user":      user,
		"addresses": addresses,
	})
}

// UpdateProfile edits the user's name, email and username.
func UpdateProfile(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var input struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	if input.Username != user.Username {
		var count int64
		initializers.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count)
		if count > 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}
	}

	user.Username = input.Username
	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName

	if err := initializers.DB.Save(&user).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// AddAddress stores a new delivery address for the user.
func AddAddress(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var address models.Address
	if err := ctx.ShouldBindJSON(&address); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	address.UserID = userId

	if err := initializers.DB.Create(&address).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create address")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"address": address})
}
