package models

type Order struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ProjectID  uint    `gorm:"column:project_id" json:"projectId"`
	UserID     uint    `gorm:"column:user_id" json:"userId"`
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`
	Status     int     `json:"status"`
	Cashier    int     `json:"cashier"`
	Items      []Item  `json:"items" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "gorder"
}

// Item rows carry no surrogate id; an item belongs to exactly one order.
type Item struct {
	OrderID    uint  `gorm:"column:order_id" json:"orderId"`
	ProductID  uint  `gorm:"column:product_id" json:"productId"`
	Topping1ID *uint `gorm:"column:topping1_id" json:"topping1Id"`
	Topping2ID *uint `gorm:"column:topping2_id" json:"topping2Id"`
	Quantity   int   `json:"quantity"`
}

func (Item) TableName() string {
	return "item"
}
