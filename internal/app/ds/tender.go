package ds

import "time"

// Статусы тендера
const (
	TenderDraft  = "draft"
	TenderActive = "active"
	TenderClosed = "closed"
)

// Таблица тендеров корпоративных клиентов
type Tender struct {
	ID          uint      `gorm:"primaryKey"`
	CompanyID   uint      `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(150);not null"`
	Category    string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text"`
	Budget      float64   `gorm:"type:decimal(12,2)"`
	Deadline    time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);default:'draft';not null"`
	CreatedAt   time.Time `gorm:"not null"`

	Company User `gorm:"foreignKey:CompanyID"`
}

// Таблица многие-ко-многим (тендеры-дилеры): адресные дилеры тендера.
// Отсутствие записей означает, что тендер открыт всем одобренным партнёрам.
type TenderDealer struct {
	ID       uint `gorm:"primaryKey"`
	TenderID uint `gorm:"not null;index;uniqueIndex:idx_tender_dealer"`
	DealerID uint `gorm:"not null;index;uniqueIndex:idx_tender_dealer"`

	Tender Tender `gorm:"foreignKey:TenderID"`
	Dealer User   `gorm:"foreignKey:DealerID"`
}
