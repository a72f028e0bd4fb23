package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/ready24/shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestAddToCartCreatesCartIfNotExists(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	user := createUser(t, db, "test_user", "user")
	token := bearerToken(t, user)
	category := createCategory(t, db, "Drills")
	product := createProduct(t, db, "Impact Drill", 100, 0.24, category.ID)

	var count int64
	db.Model(&models.ShoppingCart{}).Where("user_id = ? AND active = ?", user.ID, true).Count(&count)
	require.Zero(t, count)

	rec := doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": product.ID}, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	db.Model(&models.ShoppingCart{}).Where("user_id = ? AND active = ?", user.ID, true).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddToCartTwiceIncrementsQuantity(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	user := createUser(t, db, "test_user", "user")
	token := bearerToken(t, user)
	category := createCategory(t, db, "Drills")
	product := createProduct(t, db, "Impact Drill", 100, 0.24, category.ID)

	for range 2 {
		rec := doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": product.ID}, token)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	var items []models.ShoppingCartProduct
	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&items).Error)
	require.Len(t, items, 1, "a repeated add must not create a second line item")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	token := bearerToken(t, createUser(t, db, "test_user", "user"))

	rec := doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": 9999}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCartRequiresAuth(t *testing.T) {
	setupTest(t)
	router := newRouter()

	rec := doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": 1}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddToCartRejectsGarbageToken(t *testing.T) {
	setupTest(t)
	router := newRouter()

	rec := doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": 1}, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCartTotal(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	user := createUser(t, db, "test_user", "user")
	token := bearerToken(t, user)
	category := createCategory(t, db, "Drills")
	drill := createProduct(t, db, "Impact Drill", 100, 0.24, category.ID)
	saw := createProduct(t, db, "Circular Saw", 200, 0.11, category.ID)

	rec := doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": drill.ID, "quantity": 2}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": saw.ID}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/cart", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total string `json:"total"`
		Cart  struct {
			Items []models.ShoppingCartProduct `json:"items"`
		} `json:"cart"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "470.00", body.Total)
	assert.Len(t, body.Cart.Items, 2)
}

func TestApplyPromoCode(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	user := createUser(t, db, "test_user", "user")
	token := bearerToken(t, user)
	category := createCategory(t, db, "Drills")
	product := createProduct(t, db, "Impact Drill", 100, 0.24, category.ID)

	promo := models.PromoCode{
		Code:       "WELCOME10",
		Discount:   10,
		ExpiryDate: datatypes.Date(time.Now().AddDate(0, 0, 7)),
		Active:     true,
	}
	require.NoError(t, db.Create(&promo).Error)

	// No active cart yet.
	rec := doRequest(t, router, http.MethodPost, "/cart/promo", map[string]any{"code": "WELCOME10"}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": product.ID}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/cart/promo", map[string]any{"code": "WELCOME10"}, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	var cart models.ShoppingCart
	require.NoError(t, db.Where("user_id = ? AND active = ?", user.ID, true).First(&cart).Error)
	require.NotNil(t, cart.PromoCodeID)
	assert.Equal(t, promo.ID, *cart.PromoCodeID)
}

func TestApplyExpiredPromoCode(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	user := createUser(t, db, "test_user", "user")
	token := bearerToken(t, user)
	category := createCategory(t, db, "Drills")
	product := createProduct(t, db, "Impact Drill", 100, 0.24, category.ID)

	promo := models.PromoCode{
		Code:       "STALE",
		Discount:   10,
		ExpiryDate: datatypes.Date(time.Now().AddDate(0, 0, -1)),
		Active:     true,
	}
	require.NoError(t, db.Create(&promo).Error)

	rec := doRequest(t, router, http.MethodPost, "/cart", map[string]any{"productId": product.ID}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/cart/promo", map[string]any{"code": "STALE"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
