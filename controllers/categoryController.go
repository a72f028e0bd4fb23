package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ready24/shop-api/initializers"
	"github.com/ready24/shop-api/models"
	"gorm.io/gorm"
)

// GetCategories lists every category, fetched per request.
func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory resolves a category by slug and returns its products
// together with the distinct tools found on them. Products can be
// narrowed with ?tools=<id> query parameters; any product carrying at
// least one of the selected tools matches.
func GetCategory(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var category models.Category
	result := initializers.DB.Where("slug = ?", slug).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category does not exist", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", result.Error)
		}
		return
	}

	var tools []models.Tool
	result = initializers.DB.
		Distinct("tools.*").
		Joins("JOIN product_tools ON product_tools.tool_id = tools.id").
		Joins("JOIN products ON products.id = product_tools.product_id").
		Where("products.category_id = ?", category.ID).
		Find(&tools)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch tools", result.Error)
		return
	}

	query := initializers.DB.Preload("Pictures").Where("category_id = ?", category.ID)
	if selectedTools := ctx.QueryArray("tools"); len(selectedTools) > 0 {
		query = query.
			Distinct("products.*").
			Joins("JOIN product_tools ON product_tools.product_id = products.id").
			Where("product_tools.tool_id IN ?", selectedTools)
	}

	var products []models.Product
	if result := query.Find(&products); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": products,
		"tools":    tools,
	})
}

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}
