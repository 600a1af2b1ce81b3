package models

import "gorm.io/datatypes"

type Product struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ProjectID    uint           `gorm:"column:project_id" json:"projectId"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	ToppingGroup *int           `gorm:"column:topping_group" json:"toppingGroup"`
	ToppingLimit int            `gorm:"column:topping_limit" json:"toppingLimit"`
	Allergens    datatypes.JSON `json:"allergens,omitempty"`
	Images       []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "product"
}

type Topping struct {
	ToppingID    uint    `gorm:"column:topping_id;primaryKey" json:"toppingId"`
	ProjectID    uint    `gorm:"column:project_id" json:"projectId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ToppingGroup *int    `gorm:"column:topping_group" json:"toppingGroup"`
}

func (Topping) TableName() string {
	return "topping"
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"column:product_id" json:"productId"`
	Url       string `json:"url"`
}

func (ProductImage) TableName() string {
	return "product_image"
}
