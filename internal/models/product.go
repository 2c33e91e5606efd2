package models

import "gorm.io/datatypes"

type Product struct {
	BaseModel
	UserID            string         `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID        string         `gorm:"type:uuid;not null;index:idx_products_category_active" json:"category_id"`
	Name              string         `gorm:"not null" json:"name"`
	Slug              string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description       string         `gorm:"not null" json:"description"`
	ShortDescription  string         `json:"short_description,omitempty"`
	Price             float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	ComparePrice      *float64       `gorm:"type:decimal(10,2)" json:"compare_price,omitempty"`
	SKU               *string        `gorm:"uniqueIndex" json:"sku,omitempty"`
	InventoryQuantity int            `gorm:"default:0" json:"inventory_quantity"`
	MinOrderQuantity  int            `gorm:"default:1" json:"min_order_quantity"`
	MaxOrderQuantity  *int           `json:"max_order_quantity,omitempty"`
	Weight            *float64       `gorm:"type:decimal(8,2)" json:"weight,omitempty"`
	Dimensions        datatypes.JSON `json:"dimensions,omitempty"`
	IsActive          bool           `gorm:"index:idx_products_category_active;index:idx_products_active_featured" json:"is_active"`
	IsFeatured        bool           `gorm:"default:false;index:idx_products_active_featured" json:"is_featured"`
	MetaTitle         string         `json:"meta_title,omitempty"`
	MetaDescription   string         `json:"meta_description,omitempty"`

	User     *User          `gorm:"foreignKey:UserID" json:"vendor,omitempty"`
	Category *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images   []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

// PrimaryImage returns the image flagged primary, falling back to the first
// by sort order. Requires Images to be preloaded.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

type ProductImage struct {
	BaseModel
	ProductID string `gorm:"type:uuid;not null;index" json:"product_id"`
	ImagePath string `gorm:"not null" json:"image_path"`
	AltText   string `json:"alt_text,omitempty"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	IsPrimary bool   `gorm:"default:false" json:"is_primary"`
}
