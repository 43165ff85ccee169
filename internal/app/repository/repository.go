package repository

import (
	"backend/internal/app/ds"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.StorageSpace{},
		&ds.Booking{},
		&ds.Tender{},
		&ds.TenderDealer{},
		&ds.Quote{},
		&ds.Partnership{},
		&ds.ServicePackage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// Ошибки доменного уровня, которые обработчики превращают в HTTP статусы
var (
	ErrSpaceNotFound     = errors.New("складская площадь не найдена")
	ErrInsufficientArea  = errors.New("недостаточно свободной площади на выбранные даты")
	ErrDuplicateQuote    = errors.New("предложение по этому тендеру уже подано")
	ErrDuplicateRecord   = errors.New("запись для этой пары уже существует")
	ErrInvalidTransition = errors.New("недопустимый переход статуса")
)

// isUniqueViolation распознает нарушение уникального индекса PostgreSQL.
// Это вторая линия защиты: проверка существования перед вставкой не
// закрывает гонку двух одновременных запросов, индекс - закрывает.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "SQLSTATE 23505")
}
