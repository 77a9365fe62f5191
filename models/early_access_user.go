// models/early_access_user.go
package models

import (
	"time"
)

// EarlyAccessUser is one wallet that opted into the pre-launch list.
// walletAddress is the upsert key: repeat connections from the same wallet
// must never create a second row or touch id/joined_at.
type EarlyAccessUser struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletAddress      string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"walletAddress"` // Primary lookup key, case-sensitive
	Email              *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	HasRequestedAccess bool      `gorm:"not null;default:true" json:"hasRequestedAccess"`
	JoinedAt           time.Time `gorm:"not null;autoCreateTime" json:"joinedAt"`
}

// EmailOrDefault renders the admin-facing email column; absent emails show
// as a fixed placeholder string rather than null.
func (u *EarlyAccessUser) EmailOrDefault() string {
	if u.Email == nil || *u.Email == "" {
		return "Not provided"
	}
	return *u.Email
}
