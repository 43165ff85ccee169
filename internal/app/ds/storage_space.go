package ds

import "time"

// Статусы складской площади
const (
	SpaceActive   = "active"
	SpaceInactive = "inactive"
)

// Таблица складских площадей. Создаётся и изменяется только дилером-владельцем.
// AvailableArea - рекламируемый потолок свободной площади, задаётся владельцем
// и не пересчитывается динамически.
type StorageSpace struct {
	ID            uint      `gorm:"primaryKey"`
	DealerID      uint      `gorm:"not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Address       string    `gorm:"type:varchar(255)"`
	Description   string    `gorm:"type:text"`
	TotalArea     int       `gorm:"not null"`                  // общая площадь, кв. футы
	AvailableArea int       `gorm:"not null"`                  // рекламируемая свободная площадь
	DailyRate     float64   `gorm:"type:decimal(10,2);not null"` // ставка за кв. фут в сутки
	Status        string    `gorm:"type:varchar(20);default:'active';not null"`
	ImageURL      *string   `gorm:"type:varchar(255)"`
	IsDeleted     bool      `gorm:"type:boolean;default:false;not null"`
	CreatedAt     time.Time `gorm:"not null"`

	Dealer User `gorm:"foreignKey:DealerID"`
}
