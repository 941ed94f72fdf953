package models

type Vehicle struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null;column:nome" json:"nome"`
	Brand string `gorm:"size:255;not null;column:marca" json:"marca"`
	Year  int    `gorm:"not null;column:ano" json:"ano"`
}

func (Vehicle) TableName() string { return "veiculos" }
