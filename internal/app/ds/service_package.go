package ds

import "time"

// Статусы маркетингового пакета
const (
	PackageActive   = "active"
	PackageInactive = "inactive"
)

// Таблица маркетинговых пакетов агентств
type ServicePackage struct {
	ID          uint      `gorm:"primaryKey"`
	AgencyID    uint      `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50)"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	ImageURL    *string   `gorm:"type:varchar(255)"`
	Status      string    `gorm:"type:varchar(20);default:'active';not null"`
	IsDeleted   bool      `gorm:"type:boolean;default:false;not null"`
	CreatedAt   time.Time `gorm:"not null"`

	Agency User `gorm:"foreignKey:AgencyID"`
}
