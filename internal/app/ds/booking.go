package ds

import "time"

// Статусы бронирования
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Таблица бронирований складских площадей.
// EndDate - дата окончания занятости (включается в проверку пересечения).
type Booking struct {
	ID           uint      `gorm:"primaryKey"`
	SpaceID      uint      `gorm:"not null;index"`
	CompanyID    uint      `gorm:"not null;index"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	RequiredArea int       `gorm:"not null"`                    // требуемая площадь, кв. футы
	TotalPrice   float64   `gorm:"type:decimal(12,2);not null"` // ставка × площадь × дни
	Status       string    `gorm:"type:varchar(20);default:'pending';not null"`
	CompanyNotes string    `gorm:"type:text"`
	DealerNotes  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time

	Space   StorageSpace `gorm:"foreignKey:SpaceID"`
	Company User         `gorm:"foreignKey:CompanyID"`
}
