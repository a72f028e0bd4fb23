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

func TestValidatePromoCode(t *testing.T) {
	db := setupTest(t)
	router := newRouter()

	promo := models.PromoCode{
		Code:       "WELCOME10",
		Discount:   10,
		ExpiryDate: datatypes.Date(time.Now().AddDate(0, 0, 7)),
		Active:     true,
	}
	require.NoError(t, db.Create(&promo).Error)

	rec := doRequest(t, router, http.MethodGet, "/promo/WELCOME10", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Valid    bool `json:"valid"`
		Discount int  `json:"discount"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Valid)
	assert.Equal(t, 10, body.Discount)

	rec = doRequest(t, router, http.MethodGet, "/promo/NOPE", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminPromoListPersistsExpiry(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	adminToken := bearerToken(t, createUser(t, db, "admin_user", "admin"))

	stale := models.PromoCode{
		Code:       "STALE",
		Discount:   5,
		ExpiryDate: datatypes.Date(time.Now().AddDate(0, 0, -1)),
		Active:     true,
	}
	require.NoError(t, db.Create(&stale).Error)

	rec := doRequest(t, router, http.MethodGet, "/admin/promo", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var reloaded models.PromoCode
	require.NoError(t, db.Where("code = ?", "STALE").First(&reloaded).Error)
	assert.False(t, reloaded.Active, "listing must persist the expired flag")
}

func TestDeletedPromoCodeCanBeRecreated(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	adminToken := bearerToken(t, createUser(t, db, "admin_user", "admin"))

	payload := map[string]any{
		"code":       "SUMMER10",
		"discount":   10,
		"expiryDate": time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
		"active":     true,
	}
	rec := doRequest(t, router, http.MethodPost, "/admin/promo", payload, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/admin/promo/SUMMER10", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/admin/promo/SUMMER10", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The code is gone for good, so the same code can be issued again.
	rec = doRequest(t, router, http.MethodPost, "/admin/promo", payload, adminToken)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	db.Unscoped().Model(&models.PromoCode{}).Where("code = ?", "SUMMER10").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreatePromoCodeRequiresAdmin(t *testing.T) {
	db := setupTest(t)
	router := newRouter()
	userToken := bearerToken(t, createUser(t, db, "plain_user", "user"))

	payload := map[string]any{
		"code":       "NEW5",
		"discount":   5,
		"expiryDate": time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
		"active":     true,
	}
	rec := doRequest(t, router, http.MethodPost, "/admin/promo", payload, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := bearerToken(t, createUser(t, db, "admin_user", "admin"))
	rec = doRequest(t, router, http.MethodPost, "/admin/promo", payload, adminToken)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
