package model

import "github.com/google/uuid"

type Branch struct {
	BaseModel
	Code           string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name           string        `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;index" json:"organization_id" validate:"uuid_required"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Phone          string        `gorm:"type:varchar(20)" json:"phone"`
	Address        string        `gorm:"type:text" json:"address"`
	Notes          string        `gorm:"type:text" json:"notes"`
	IsActive       bool          `gorm:"default:true" json:"is_active"`

	// User tracking
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	UpdatedByUserID *string `gorm:"type:varchar(255)" json:"updated_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`
	UpdatedByUser   *User   `gorm:"foreignKey:UpdatedByUserID;references:ID" json:"updated_by_user,omitempty"`
}
