package repository

import (
	"backend/internal/app/ds"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Методы для работы с тендерами

// EffectiveTenderStatus вычисляет производный статус на границе чтения:
// активный тендер с истёкшим дедлайном отдаётся как closed. Переход в базу
// не пишется, все чтения проходят через эту функцию.
func EffectiveTenderStatus(t *ds.Tender, now time.Time) string {
	if t.Status == ds.TenderActive && now.After(t.Deadline) {
		return ds.TenderClosed
	}
	return t.Status
}

func (r *Repository) CreateTender(tender *ds.Tender, dealerIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tender).Error; err != nil {
			return err
		}
		for _, dealerID := range dealerIDs {
			td := ds.TenderDealer{TenderID: tender.ID, DealerID: dealerID}
			if err := tx.Create(&td).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetTenderByID(id uint) (*ds.Tender, error) {
	var tender ds.Tender
	err := r.db.Preload("Company").First(&tender, id).Error
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

// GetTenderDealerIDs возвращает адресных дилеров тендера (пусто = все партнёры)
func (r *Repository) GetTenderDealerIDs(tenderID uint) ([]uint, error) {
	var targets []ds.TenderDealer
	err := r.db.Where("tender_id = ?", tenderID).Find(&targets).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(targets))
	for _, t := range targets {
		ids = append(ids, t.DealerID)
	}
	return ids, nil
}

func (r *Repository) GetTendersForCompany(companyID uint) ([]ds.Tender, error) {
	var tenders []ds.Tender
	err := r.db.Preload("Company").
		Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&tenders).Error
	return tenders, err
}

// GetTendersForDealer возвращает активные тендеры, доступные дилеру:
// адресованные ему напрямую, либо без адресации - от компаний, с которыми
// у дилера одобренное партнёрство
func (r *Repository) GetTendersForDealer(dealerID uint) ([]ds.Tender, error) {
	var tenders []ds.Tender
	err := r.db.Preload("Company").
		Where("status = ?", ds.TenderActive).
		Where(`id IN (SELECT tender_id FROM tender_dealers WHERE dealer_id = ?)
			OR (id NOT IN (SELECT tender_id FROM tender_dealers)
				AND company_id IN (SELECT company_id FROM partnerships WHERE dealer_id = ? AND status = ?))`,
			dealerID, dealerID, ds.PartnershipApproved).
		Order("created_at DESC").Find(&tenders).Error
	return tenders, err
}

func (r *Repository) GetAllTenders() ([]ds.Tender, error) {
	var tenders []ds.Tender
	err := r.db.Preload("Company").Order("created_at DESC").Find(&tenders).Error
	return tenders, err
}

// UpdateTenderFields обновляет поля тендера. Разрешено только владельцу
// и только в статусе draft.
func (r *Repository) UpdateTenderFields(id, companyID uint, title, category, description *string, budget *float64, deadline *time.Time) error {
	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if category != nil {
		updates["category"] = *category
	}
	if description != nil {
		updates["description"] = *description
	}
	if budget != nil {
		updates["budget"] = *budget
	}
	if deadline != nil {
		updates["deadline"] = *deadline
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Tender{}).
		Where("id = ? AND company_id = ? AND status = ?", id, companyID, ds.TenderDraft).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("тендер нельзя изменить - неверный статус или владелец")
	}
	return nil
}

// ReplaceTenderDealers заменяет список адресных дилеров черновика
func (r *Repository) ReplaceTenderDealers(tenderID uint, dealerIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tender_id = ?", tenderID).Delete(&ds.TenderDealer{}).Error; err != nil {
			return err
		}
		for _, dealerID := range dealerIDs {
			td := ds.TenderDealer{TenderID: tenderID, DealerID: dealerID}
			if err := tx.Create(&td).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PublishTender переводит черновик в active. Дедлайн должен быть в будущем.
func (r *Repository) PublishTender(id, companyID uint) error {
	tender, err := r.GetTenderByID(id)
	if err != nil {
		return err
	}
	if tender.CompanyID != companyID || tender.Status != ds.TenderDraft {
		return errors.New("тендер нельзя опубликовать - неверный статус или владелец")
	}
	if !tender.Deadline.After(time.Now()) {
		return errors.New("дедлайн тендера уже прошёл")
	}

	return r.db.Model(&ds.Tender{}).Where("id = ?", id).Update("status", ds.TenderActive).Error
}

// CloseTender явно закрывает активный тендер владельцем
func (r *Repository) CloseTender(id, companyID uint) error {
	result := r.db.Model(&ds.Tender{}).
		Where("id = ? AND company_id = ? AND status = ?", id, companyID, ds.TenderActive).
		Update("status", ds.TenderClosed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("тендер нельзя закрыть - неверный статус или владелец")
	}
	return nil
}

// DeleteTender удаляет черновик вместе с адресными дилерами
func (r *Repository) DeleteTender(id, companyID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND company_id = ? AND status = ?", id, companyID, ds.TenderDraft).
			Delete(&ds.Tender{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("удалить можно только собственный черновик тендера")
		}
		return tx.Where("tender_id = ?", id).Delete(&ds.TenderDealer{}).Error
	})
}
