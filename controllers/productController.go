package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/initializers"
	"github.com/ready24/shop-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Product handlers
func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		if errors.Is(err, models.ErrInvalidVatRate) {
			respondWithError(ctx, http.StatusBadRequest, "Invalid VAT rate", err)
			return
		}
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func CreateTool(ctx *gin.Context) {
	var tool models.Tool
	if err := ctx.ShouldBindJSON(&tool); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&tool).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create tool", err)
		return
	}

	ctx.JSON(http.StatusCreated, tool)
}

func GetProducts(ctx *gin.Context) {
	var products []models.Product

	// Add pagination
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	offset := (page - 1) * limit

	query := initializers.DB.Preload("Pictures")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	result := query.Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Product{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("name LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetProduct resolves a product by slug for the product detail page.
func GetProduct(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var product models.Product
	result := initializers.DB.
		Preload("Category").
		Preload("Tools").
		Preload("Pictures").
		Where("slug = ?", slug).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"product":    product,
		"grossPrice": product.GrossPrice(),
	})
}

// SearchProducts filters products by a case-insensitive name substring.
// An empty result is a success, not an error.
func SearchProducts(ctx *gin.Context) {
	searched := ctx.Query("q")
	products := []models.Product{}

	if searched != "" {
		result := initializers.DB.
			Preload("Pictures").
			Where("LOWER(name) LIKE LOWER(?)", "%"+searched+"%").
			Find(&products)
		if result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to search products", result.Error)
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}
