package models

import "gorm.io/gorm"

type Address struct {
	gorm.Model
	UserID  uint   `json:"userId"`
	Name    string `json:"name" binding:"required"`
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zipcode string `json:"zipcode" binding:"required"`
}
