package repository

import (
	"backend/internal/app/ds"
)

// Методы для работы с партнёрствами

// CreatePartnership вставляет запрос партнёрства. Повтор по паре
// (dealer_id, company_id) отбрасывается уникальным индексом.
func (r *Repository) CreatePartnership(partnership *ds.Partnership) error {
	err := r.db.Create(partnership).Error
	if isUniqueViolation(err) {
		return ErrDuplicateRecord
	}
	return err
}

func (r *Repository) PartnershipExists(dealerID, companyID uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Partnership{}).
		Where("dealer_id = ? AND company_id = ?", dealerID, companyID).
		Count(&count).Error
	return count > 0, err
}

// HasApprovedPartnership проверяет одобренное партнёрство пары дилер-компания
func (r *Repository) HasApprovedPartnership(dealerID, companyID uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Partnership{}).
		Where("dealer_id = ? AND company_id = ? AND status = ?", dealerID, companyID, ds.PartnershipApproved).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) GetPartnershipByID(id uint) (*ds.Partnership, error) {
	var partnership ds.Partnership
	err := r.db.Preload("Dealer").Preload("Company").First(&partnership, id).Error
	if err != nil {
		return nil, err
	}
	return &partnership, nil
}

func (r *Repository) GetPartnershipsForDealer(dealerID uint) ([]ds.Partnership, error) {
	var partnerships []ds.Partnership
	err := r.db.Preload("Dealer").Preload("Company").
		Where("dealer_id = ?", dealerID).
		Order("created_at DESC").Find(&partnerships).Error
	return partnerships, err
}

func (r *Repository) GetPartnershipsForCompany(companyID uint) ([]ds.Partnership, error) {
	var partnerships []ds.Partnership
	err := r.db.Preload("Dealer").Preload("Company").
		Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&partnerships).Error
	return partnerships, err
}

func (r *Repository) GetAllPartnerships() ([]ds.Partnership, error) {
	var partnerships []ds.Partnership
	err := r.db.Preload("Dealer").Preload("Company").
		Order("created_at DESC").Find(&partnerships).Error
	return partnerships, err
}

// UpdatePartnershipStatus переводит запрос из pending в approved/rejected.
// Решение принимает компания-адресат, владение проверяется в WHERE.
func (r *Repository) UpdatePartnershipStatus(id, companyID uint, newStatus string) error {
	if newStatus != ds.PartnershipApproved && newStatus != ds.PartnershipRejected {
		return ErrInvalidTransition
	}

	result := r.db.Model(&ds.Partnership{}).
		Where("id = ? AND company_id = ? AND status = ?", id, companyID, ds.PartnershipPending).
		Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
