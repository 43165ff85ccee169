package repository

import (
	"backend/internal/app/ds"
	"time"
)

// Методы для работы с бронированиями (создание - в availability.go)

// Действие над бронью -> целевой статус
var bookingActions = map[string]string{
	"confirm":  ds.BookingConfirmed,
	"reject":   ds.BookingRejected,
	"complete": ds.BookingCompleted,
	"cancel":   ds.BookingCancelled,
}

// BookingActionStatus возвращает целевой статус для действия
func BookingActionStatus(action string) (string, bool) {
	status, ok := bookingActions[action]
	return status, ok
}

// CanTransitionBooking - таблица переходов статусов брони.
// rejected, completed и cancelled терминальны.
func CanTransitionBooking(current, next string) bool {
	switch current {
	case ds.BookingPending:
		return next == ds.BookingConfirmed || next == ds.BookingRejected || next == ds.BookingCancelled
	case ds.BookingConfirmed:
		return next == ds.BookingCompleted || next == ds.BookingCancelled
	}
	return false
}

func (r *Repository) GetBookingByID(id uint) (*ds.Booking, error) {
	var booking ds.Booking
	err := r.db.Preload("Space").Preload("Space.Dealer").Preload("Company").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookingsForCompany возвращает брони корпоративного клиента
func (r *Repository) GetBookingsForCompany(companyID uint, status string) ([]ds.Booking, error) {
	tx := r.db.Preload("Space").Preload("Company").Where("company_id = ?", companyID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var bookings []ds.Booking
	err := tx.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// GetBookingsForDealer возвращает брони по всем площадям дилера
func (r *Repository) GetBookingsForDealer(dealerID uint, status string) ([]ds.Booking, error) {
	tx := r.db.Preload("Space").Preload("Company").
		Joins("JOIN storage_spaces ON storage_spaces.id = bookings.space_id").
		Where("storage_spaces.dealer_id = ?", dealerID)
	if status != "" {
		tx = tx.Where("bookings.status = ?", status)
	}

	var bookings []ds.Booking
	err := tx.Order("bookings.created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *Repository) GetAllBookings(status string) ([]ds.Booking, error) {
	tx := r.db.Preload("Space").Preload("Company")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var bookings []ds.Booking
	err := tx.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// UpdateBookingStatus переводит бронь в новый статус по таблице переходов.
// fromDealer определяет, в какое поле заметок пишется комментарий.
func (r *Repository) UpdateBookingStatus(id uint, newStatus, notes string, fromDealer bool) error {
	booking, err := r.GetBookingByID(id)
	if err != nil {
		return err
	}

	if !CanTransitionBooking(booking.Status, newStatus) {
		return ErrInvalidTransition
	}

	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now(),
	}
	if notes != "" {
		if fromDealer {
			updates["dealer_notes"] = notes
		} else {
			updates["company_notes"] = notes
		}
	}

	return r.db.Model(&ds.Booking{}).Where("id = ?", id).Updates(updates).Error
}
