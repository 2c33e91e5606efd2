package models

type Category struct {
	BaseModel
	ParentID    *string `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	SortOrder   int     `gorm:"default:0" json:"sort_order"`

	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products []Product  `gorm:"foreignKey:CategoryID" json:"-"`

	// Annotated by list queries, not stored.
	ProductCount int64 `gorm:"-" json:"product_count"`
}

func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}
