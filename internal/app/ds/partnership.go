package ds

import "time"

// Статусы партнёрства
const (
	PartnershipPending  = "pending"
	PartnershipApproved = "approved"
	PartnershipRejected = "rejected"
)

// Таблица партнёрств дилер-компания.
// Уникальный индекс (dealer_id, company_id) держит инвариант
// "не более одной записи на пару" и под конкурентными запросами.
type Partnership struct {
	ID        uint      `gorm:"primaryKey"`
	DealerID  uint      `gorm:"not null;index;uniqueIndex:idx_dealer_company"`
	CompanyID uint      `gorm:"not null;index;uniqueIndex:idx_dealer_company"`
	Status    string    `gorm:"type:varchar(20);default:'pending';not null"`
	CreatedAt time.Time `gorm:"not null"`

	Dealer  User `gorm:"foreignKey:DealerID"`
	Company User `gorm:"foreignKey:CompanyID"`
}
