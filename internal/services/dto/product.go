package dto

// CreateProductRequest is bound from a multipart form; image files travel
// beside it under the `images` field.
type CreateProductRequest struct {
	Name             string   `form:"name" json:"name" validate:"required,max=255"`
	CategoryID       string   `form:"category_id" json:"category_id" validate:"required"`
	Description      string   `form:"description" json:"description" validate:"required"`
	ShortDescription string   `form:"short_description" json:"short_description" validate:"omitempty,max=500"`
	Price            float64  `form:"price" json:"price" validate:"gte=0"`
	ComparePrice     *float64 `form:"compare_price" json:"compare_price" validate:"omitempty,gte=0"`
	SKU              *string  `form:"sku" json:"sku"`

	InventoryQuantity int  `form:"inventory_quantity" json:"inventory_quantity" validate:"gte=0"`
	MinOrderQuantity  *int `form:"min_order_quantity" json:"min_order_quantity" validate:"omitempty,gte=1"`
	MaxOrderQuantity  *int `form:"max_order_quantity" json:"max_order_quantity" validate:"omitempty,gte=1"`

	Weight          *float64 `form:"weight" json:"weight" validate:"omitempty,gte=0"`
	DimensionLength *float64 `form:"dimensions[length]" json:"-" validate:"omitempty,gte=0"`
	DimensionWidth  *float64 `form:"dimensions[width]" json:"-" validate:"omitempty,gte=0"`
	DimensionHeight *float64 `form:"dimensions[height]" json:"-" validate:"omitempty,gte=0"`

	IsFeatured      bool   `form:"is_featured" json:"is_featured"`
	MetaTitle       string `form:"meta_title" json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string `form:"meta_description" json:"meta_description" validate:"omitempty,max=500"`
}

type DimensionsInput struct {
	Length *float64 `json:"length" validate:"omitempty,gte=0"`
	Width  *float64 `json:"width" validate:"omitempty,gte=0"`
	Height *float64 `json:"height" validate:"omitempty,gte=0"`
}

// UpdateProductRequest is the JSON update payload. Unlike create it may also
// flip the active and featured flags.
type UpdateProductRequest struct {
	Name             string   `json:"name" validate:"required,max=255"`
	CategoryID       string   `json:"category_id" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"short_description" validate:"omitempty,max=500"`
	Price            float64  `json:"price" validate:"gte=0"`
	ComparePrice     *float64 `json:"compare_price" validate:"omitempty,gte=0"`
	SKU              *string  `json:"sku"`

	InventoryQuantity int  `json:"inventory_quantity" validate:"gte=0"`
	MinOrderQuantity  *int `json:"min_order_quantity" validate:"omitempty,gte=1"`
	MaxOrderQuantity  *int `json:"max_order_quantity" validate:"omitempty,gte=1"`

	Weight     *float64         `json:"weight" validate:"omitempty,gte=0"`
	Dimensions *DimensionsInput `json:"dimensions"`

	IsActive        *bool  `json:"is_active"`
	IsFeatured      *bool  `json:"is_featured"`
	MetaTitle       string `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string `json:"meta_description" validate:"omitempty,max=500"`
}

type VendorProductListQuery struct {
	Category string `form:"category"`
	Status   string `form:"status" validate:"omitempty,oneof=active inactive"`
	Search   string `form:"search"`
}
