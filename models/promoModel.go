package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PromoCode struct {
	gorm.Model
	Code       string         `json:"code" binding:"required" gorm:"size:64;uniqueIndex"`
	Discount   int            `json:"discount" binding:"required"`
	ExpiryDate datatypes.Date `json:"expiryDate" binding:"required"`
	Active     bool           `json:"active"`
}

// IsValid reports whether the code can be applied at the given moment.
// Validity is derived here, at read time: the stored Active flag is a
// kill switch, and the expiry day itself already counts as expired.
func (p *PromoCode) IsValid(now time.Time) bool {
	return p.Active && now.Before(time.Time(p.ExpiryDate))
}

// ExpireCheck flips Active off once the code has expired. It does not
// persist the change; callers that want the flag stored must save the
// record themselves. Returns true when the flag was flipped.
func (p *PromoCode) ExpireCheck(now time.Time) bool {
	if p.Active && !now.Before(time.Time(p.ExpiryDate)) {
		p.Active = false
		return true
	}
	return false
}
