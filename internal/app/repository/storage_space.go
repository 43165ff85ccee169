package repository

import (
	"backend/internal/app/ds"
	"errors"

	"gorm.io/gorm"
)

// Методы для работы со складскими площадями

// GetSpaces возвращает активные площади с поиском по названию и
// опциональным фильтром по дилеру-владельцу
func (r *Repository) GetSpaces(query string, dealerID *uint) ([]ds.StorageSpace, error) {
	tx := r.db.Preload("Dealer").Where("is_deleted = ?", false)

	if dealerID != nil {
		tx = tx.Where("dealer_id = ?", *dealerID)
	} else {
		tx = tx.Where("status = ?", ds.SpaceActive)
	}
	if query != "" {
		tx = tx.Where("name ILIKE ?", "%"+query+"%")
	}

	var spaces []ds.StorageSpace
	err := tx.Order("id").Find(&spaces).Error
	return spaces, err
}

// GetSpaceByID возвращает неудаленную площадь по ID
func (r *Repository) GetSpaceByID(id uint) (*ds.StorageSpace, error) {
	var space ds.StorageSpace
	err := r.db.Preload("Dealer").Where("id = ? AND is_deleted = ?", id, false).First(&space).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return &space, nil
}

func (r *Repository) CreateSpace(space *ds.StorageSpace) error {
	return r.db.Create(space).Error
}

// UpdateSpace обновляет поля площади. Владение проверяется в условии WHERE:
// чужую площадь запрос не затронет.
func (r *Repository) UpdateSpace(id, dealerID uint, name, address, description, status *string, totalArea, availableArea *int, dailyRate *float64) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if address != nil {
		updates["address"] = *address
	}
	if description != nil {
		updates["description"] = *description
	}
	if status != nil {
		updates["status"] = *status
	}
	if totalArea != nil {
		updates["total_area"] = *totalArea
	}
	if availableArea != nil {
		updates["available_area"] = *availableArea
	}
	if dailyRate != nil {
		updates["daily_rate"] = *dailyRate
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.StorageSpace{}).
		Where("id = ? AND dealer_id = ? AND is_deleted = ?", id, dealerID, false).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSpaceNotFound
	}
	return nil
}

// DeleteSpace выполняет логическое удаление площади владельцем
func (r *Repository) DeleteSpace(id, dealerID uint) error {
	result := r.db.Model(&ds.StorageSpace{}).
		Where("id = ? AND dealer_id = ? AND is_deleted = ?", id, dealerID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSpaceNotFound
	}
	return nil
}

func (r *Repository) UpdateSpaceImage(id uint, imageURL string) error {
	return r.db.Model(&ds.StorageSpace{}).Where("id = ?", id).Update("image_url", imageURL).Error
}
