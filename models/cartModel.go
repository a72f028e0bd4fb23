package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShoppingCartProduct struct {
	gorm.Model
	ShoppingCartID uint    `json:"shoppingCartId" gorm:"uniqueIndex:idx_cart_product"`
	ProductID      uint    `json:"productId" gorm:"uniqueIndex:idx_cart_product"`
	Product        Product `json:"product"`
	Quantity       int     `json:"quantity"`
}

type ShoppingCart struct {
	gorm.Model
	UserID      uint                  `json:"userId" gorm:"index"`
	Active      bool                  `json:"active" gorm:"index"`
	PromoCodeID *uint                 `json:"promoCodeId,omitempty"`
	PromoCode   *PromoCode            `json:"promoCode,omitempty"`
	Items       []ShoppingCartProduct `json:"items" gorm:"foreignKey:ShoppingCartID;constraint:OnDelete:CASCADE"`
}

// LineTotal is quantity times the product's gross price, unrounded.
func (i *ShoppingCartProduct) LineTotal() decimal.Decimal {
	return i.Product.GrossPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums the line totals and rounds once, to two decimal places.
// Items must be loaded with their products.
func (c *ShoppingCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total.Round(2)
}
