package repository

import (
	"backend/internal/app/ds"
	"errors"

	"gorm.io/gorm"
)

// Методы для работы с маркетинговыми пакетами

// GetPackages возвращает активные пакеты с поиском по названию и
// опциональным фильтром по агентству-владельцу
func (r *Repository) GetPackages(query string, agencyID *uint) ([]ds.ServicePackage, error) {
	tx := r.db.Preload("Agency").Where("is_deleted = ?", false)

	if agencyID != nil {
		tx = tx.Where("agency_id = ?", *agencyID)
	} else {
		tx = tx.Where("status = ?", ds.PackageActive)
	}
	if query != "" {
		tx = tx.Where("title ILIKE ?", "%"+query+"%")
	}

	var packages []ds.ServicePackage
	err := tx.Order("id").Find(&packages).Error
	return packages, err
}

func (r *Repository) GetPackageByID(id uint) (*ds.ServicePackage, error) {
	var pkg ds.ServicePackage
	err := r.db.Preload("Agency").Where("id = ? AND is_deleted = ?", id, false).First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("пакет не найден")
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *Repository) CreatePackage(pkg *ds.ServicePackage) error {
	return r.db.Create(pkg).Error
}

func (r *Repository) UpdatePackage(id, agencyID uint, title, description, category, status *string, price *float64) error {
	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	if category != nil {
		updates["category"] = *category
	}
	if status != nil {
		updates["status"] = *status
	}
	if price != nil {
		updates["price"] = *price
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.ServicePackage{}).
		Where("id = ? AND agency_id = ? AND is_deleted = ?", id, agencyID, false).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("пакет нельзя изменить - неверный ID или владелец")
	}
	return nil
}

// DeletePackage выполняет логическое удаление пакета владельцем
func (r *Repository) DeletePackage(id, agencyID uint) error {
	result := r.db.Model(&ds.ServicePackage{}).
		Where("id = ? AND agency_id = ? AND is_deleted = ?", id, agencyID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("пакет нельзя удалить - неверный ID или владелец")
	}
	return nil
}

func (r *Repository) UpdatePackageImage(id uint, imageURL string) error {
	return r.db.Model(&ds.ServicePackage{}).Where("id = ?", id).Update("image_url", imageURL).Error
}
