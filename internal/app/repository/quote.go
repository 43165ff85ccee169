package repository

import (
	"backend/internal/app/ds"
)

// Методы для работы с коммерческими предложениями

// CreateQuote вставляет предложение. Дубль по (tender_id, dealer_id)
// отбрасывается уникальным индексом даже при одновременной подаче.
func (r *Repository) CreateQuote(quote *ds.Quote) error {
	err := r.db.Create(quote).Error
	if isUniqueViolation(err) {
		return ErrDuplicateQuote
	}
	return err
}

func (r *Repository) QuoteExists(tenderID, dealerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Quote{}).
		Where("tender_id = ? AND dealer_id = ?", tenderID, dealerID).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) GetQuoteByID(id uint) (*ds.Quote, error) {
	var quote ds.Quote
	err := r.db.Preload("Tender").Preload("Tender.Company").Preload("Dealer").
		First(&quote, id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *Repository) GetQuotesByTender(tenderID uint) ([]ds.Quote, error) {
	var quotes []ds.Quote
	err := r.db.Preload("Dealer").
		Where("tender_id = ?", tenderID).
		Order("created_at").Find(&quotes).Error
	return quotes, err
}

func (r *Repository) GetQuotesByDealer(dealerID uint) ([]ds.Quote, error) {
	var quotes []ds.Quote
	err := r.db.Preload("Dealer").Preload("Tender").
		Where("dealer_id = ?", dealerID).
		Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *Repository) CountQuotesByTender(tenderID uint) int {
	var count int64
	if err := r.db.Model(&ds.Quote{}).Where("tender_id = ?", tenderID).Count(&count).Error; err != nil {
		return 0
	}
	return int(count)
}

// UpdateQuoteStatus переводит предложение из submitted в approved/rejected.
// Оба состояния терминальны; соседние предложения тендера не затрагиваются.
func (r *Repository) UpdateQuoteStatus(id uint, newStatus string) error {
	if newStatus != ds.QuoteApproved && newStatus != ds.QuoteRejected {
		return ErrInvalidTransition
	}

	result := r.db.Model(&ds.Quote{}).
		Where("id = ? AND status = ?", id, ds.QuoteSubmitted).
		Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
