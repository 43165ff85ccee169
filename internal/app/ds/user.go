package ds

// Таблица пользователей (компании, дилеры, агентства, модераторы)
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Login       string `gorm:"type:varchar(50);unique;not null"`
	Password    string `gorm:"type:varchar(255);not null"`
	FullName    string `gorm:"type:varchar(100)"`
	CompanyName string `gorm:"type:varchar(100)"` // название организации
	Email       string `gorm:"type:varchar(100)"`
	Role        int    `gorm:"type:int;default:0;not null"` // 0 company, 1 dealer, 2 agency, 3 admin
}
