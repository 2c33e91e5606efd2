package models

import "time"

type VendorProfile struct {
	BaseModel
	UserID              string       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BusinessName        string       `gorm:"not null" json:"business_name"`
	BusinessDescription string       `json:"business_description,omitempty"`
	BusinessAddress     string       `json:"business_address,omitempty"`
	BusinessPhone       string       `json:"business_phone,omitempty"`
	BusinessEmail       string       `json:"business_email,omitempty"`
	BusinessLogo        string       `json:"business_logo,omitempty"`
	BusinessLicense     string       `json:"business_license,omitempty"`
	Status              VendorStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ApprovedAt          *time.Time   `json:"approved_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
