package models

import "time"

type Role struct {
	BaseModel
	Name        RoleName `gorm:"type:varchar(20);uniqueIndex;not null" json:"name"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
}

type User struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Phone        string     `json:"phone,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"`
	IsSeller     bool       `gorm:"default:false" json:"is_seller"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	RoleID       string     `gorm:"type:uuid;not null;index" json:"role_id"`

	// Relations
	Role          *Role          `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	VendorProfile *VendorProfile `gorm:"foreignKey:UserID" json:"vendor_profile,omitempty"`
	Products      []Product      `gorm:"foreignKey:UserID" json:"-"`
}

// RoleName resolves the user's role; users are always created with a seeded
// role, so the empty return only shows up on partially loaded rows.
func (u *User) RoleName() RoleName {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// AccessToken is the server-side record of an issued bearer token. The token
// itself is a signed JWT; the row keyed by its jti is what makes logout able
// to revoke exactly the presented token.
type AccessToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenID   string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
