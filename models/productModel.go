package models

import (
	"errors"
	"fmt"

	slugify "github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VatRates is the closed set of VAT rates a product may carry.
var VatRates = []decimal.Decimal{
	decimal.NewFromFloat(0.11),
	decimal.NewFromFloat(0.24),
}

var ErrInvalidVatRate = errors.New("vat rate is not one of the allowed rates")

type Category struct {
	gorm.Model
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Slug        string    `json:"slug" gorm:"size:100;uniqueIndex"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type Tool struct {
	gorm.Model
	Name string `json:"name" binding:"required" gorm:"size:128;uniqueIndex"`
}

type Product struct {
	gorm.Model
	Name       string          `json:"name" binding:"required"`
	Stock      int             `json:"stock"`
	NettoPrice int             `json:"nettoPrice" binding:"required"`
	Vat        decimal.Decimal `json:"vat" binding:"required" gorm:"type:decimal(4,2)"`
	Height     int             `json:"height"`
	Length     int             `json:"length"`
	Width      int             `json:"width"`
	Weight     int             `json:"weight"`
	Slug       string          `json:"slug" gorm:"size:100;uniqueIndex"`
	CategoryID uint            `json:"categoryId" binding:"required"`
	Category   *Category       `json:"category,omitempty"`
	Tools      []Tool          `json:"tools,omitempty" gorm:"many2many:product_tools;"`
	Pictures   []Picture       `json:"pictures,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type Picture struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
}

// GrossPrice is the netto price plus VAT. No rounding happens here;
// rounding is applied once, when a cart total is aggregated.
func (p *Product) GrossPrice() decimal.Decimal {
	netto := decimal.NewFromInt(int64(p.NettoPrice))
	return netto.Add(netto.Mul(p.Vat))
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	for _, rate := range VatRates {
		if rate.Equal(p.Vat) {
			return nil
		}
	}
	return ErrInvalidVatRate
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Slug != "" {
		return nil
	}
	slug, err := uniqueSlug(tx, &Product{}, p.Name)
	if err != nil {
		return err
	}
	p.Slug = slug
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug != "" {
		return nil
	}
	slug, err := uniqueSlug(tx, &Category{}, c.Name)
	if err != nil {
		return err
	}
	c.Slug = slug
	return nil
}

// uniqueSlug derives a url-safe slug from name and appends an
// incrementing numeric suffix until no row of model holds it.
func uniqueSlug(tx *gorm.DB, model any, name string) (string, error) {
	base := slugify.Make(name)
	if base == "" {
		return "", fmt.Errorf("cannot derive a slug from %q", name)
	}

	candidate := base
	for counter := 1; ; counter++ {
		var count int64
		if err := tx.Model(model).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
