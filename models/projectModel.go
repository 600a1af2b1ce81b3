package models

type Project struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name" binding:"required"`
	Floor string `json:"floor" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (Project) TableName() string {
	return "project"
}
