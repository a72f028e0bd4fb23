package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ready24/shop-api/initializers"
	"github.com/ready24/shop-api/models"
	"github.com/ready24/shop-api/routes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// setupTest wires an in-memory database into the package-level DB the
// handlers use and returns it for fixture creation.
func setupTest(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tool{},
		&models.Product{},
		&models.Picture{},
		&models.PromoCode{},
		&models.ShoppingCart{},
		&models.ShoppingCartProduct{},
		&models.Address{},
	))
	initializers.DB = db
	return db
}

func newRouter() *gin.Engine {
	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.CatalogRoutes(server)
	routes.CartRoutes(server)
	routes.CheckoutRoutes(server)
	routes.ProfileRoutes(server)
	routes.PromoRoutes(server)
	return server
}

func createUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  string(hash),
		Role:      role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func bearerToken(t *testing.T, user models.User) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, name string, netto int, vat float64, categoryId uint) models.Product {
	t.Helper()
	product := models.Product{
		Name:       name,
		NettoPrice: netto,
		Vat:        decimal.NewFromFloat(vat),
		CategoryID: categoryId,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}
