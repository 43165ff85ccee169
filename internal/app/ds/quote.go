package ds

import "time"

// Статусы коммерческого предложения
const (
	QuoteSubmitted = "submitted"
	QuoteApproved  = "approved"
	QuoteRejected  = "rejected"
)

// Таблица коммерческих предложений дилеров по тендерам.
// Уникальный индекс (tender_id, dealer_id) закрывает гонку двойной подачи:
// не более одного предложения от дилера на тендер.
type Quote struct {
	ID          uint      `gorm:"primaryKey"`
	TenderID    uint      `gorm:"not null;index;uniqueIndex:idx_tender_quote"`
	DealerID    uint      `gorm:"not null;index;uniqueIndex:idx_tender_quote"`
	Budget      float64   `gorm:"type:decimal(12,2);not null"`
	DocumentURL *string   `gorm:"type:varchar(255)"` // загруженный документ в MinIO
	Comment     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);default:'submitted';not null"`
	CreatedAt   time.Time `gorm:"not null"`

	Tender Tender `gorm:"foreignKey:TenderID"`
	Dealer User   `gorm:"foreignKey:DealerID"`
}
