package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/role"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН БРОНИРОВАНИЯ ============

func (h *APIHandler) bookingToDTO(b *ds.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           b.ID,
		SpaceID:      b.SpaceID,
		SpaceName:    b.Space.Name,
		CompanyID:    b.CompanyID,
		CompanyName:  b.Company.CompanyName,
		StartDate:    b.StartDate.Format(dateLayout),
		EndDate:      b.EndDate.Format(dateLayout),
		RequiredArea: b.RequiredArea,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		CompanyNotes: b.CompanyNotes,
		DealerNotes:  b.DealerNotes,
		CreatedAt:    b.CreatedAt,
	}
}

// CreateBooking создает бронирование площади
// @Summary Создание бронирования
// @Description Создает бронь складской площади (только для компаний). Стоимость пересчитывается на сервере, проверка остатка и вставка выполняются в одной транзакции.
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Данные брони"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings [post]
func (h *APIHandler) CreateBooking(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	space, err := h.Repository.GetSpaceByID(req.SpaceID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Площадь не найдена")
		return
	}

	if req.RequiredArea > space.AvailableArea {
		h.errorResponse(c, http.StatusBadRequest, "Запрошенная площадь превышает рекламируемую свободную площадь")
		return
	}

	// Пересчитываем стоимость на сервере и сверяем с заявленной
	expected := CalculateBookingCost(space.DailyRate, req.RequiredArea, start, end)
	if !PriceMatches(req.TotalPrice, expected) {
		h.errorResponse(c, http.StatusBadRequest,
			fmt.Sprintf("Неверная стоимость брони: ожидается %.2f", expected))
		return
	}

	booking := ds.Booking{
		SpaceID:      req.SpaceID,
		CompanyID:    userID,
		StartDate:    start,
		EndDate:      end,
		RequiredArea: req.RequiredArea,
		TotalPrice:   expected,
		Status:       ds.BookingPending,
		CompanyNotes: req.Notes,
		CreatedAt:    time.Now(),
	}

	if err := h.Repository.CreateBooking(&booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrSpaceNotFound):
			h.errorResponse(c, http.StatusNotFound, "Площадь не найдена")
		case errors.Is(err, repository.ErrInsufficientArea):
			h.errorResponse(c, http.StatusBadRequest, err.Error())
		default:
			logrus.Error("Error creating booking: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания брони")
		}
		return
	}

	created, err := h.Repository.GetBookingByID(booking.ID)
	if err != nil {
		logrus.Error("Error loading created booking: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания брони")
		return
	}

	c.JSON(http.StatusCreated, h.bookingToDTO(created))
}

// GetBookings получает список бронирований
// @Summary Получение списка бронирований
// @Description Компания видит свои брони, дилер - брони своих площадей, модератор - все
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.BookingListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings [get]
func (h *APIHandler) GetBookings(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	status := c.Query("status")

	var bookings []ds.Booking
	switch userRole {
	case role.Dealer:
		bookings, err = h.Repository.GetBookingsForDealer(userID, status)
	case role.Admin:
		bookings, err = h.Repository.GetAllBookings(status)
	default:
		bookings, err = h.Repository.GetBookingsForCompany(userID, status)
	}
	if err != nil {
		logrus.Error("Error getting bookings: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения броней")
		return
	}

	dtoBookings := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		dtoBookings[i] = h.bookingToDTO(&bookings[i])
	}

	c.JSON(http.StatusOK, dto.BookingListResponse{
		Bookings: dtoBookings,
		Total:    len(dtoBookings),
	})
}

// GetBooking получает одно бронирование
// @Summary Получение брони по ID
// @Description Возвращает бронь, если пользователь - ее компания, дилер площади или модератор
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID брони"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings/{id} [get]
func (h *APIHandler) GetBooking(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID брони")
		return
	}

	booking, err := h.Repository.GetBookingByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Бронь не найдена")
		return
	}

	if !canAccessBooking(booking, userID, userRole) {
		h.errorResponse(c, http.StatusForbidden, "Нет доступа к этой брони")
		return
	}

	c.JSON(http.StatusOK, h.bookingToDTO(booking))
}

// canAccessBooking проверяет доступ к брони по роли
func canAccessBooking(b *ds.Booking, userID uint, userRole role.Role) bool {
	switch userRole {
	case role.Admin:
		return true
	case role.Dealer:
		return b.Space.DealerID == userID
	default:
		return b.CompanyID == userID
	}
}

// UpdateBooking применяет действие к брони
// @Summary Изменение статуса брони
// @Description Действия: confirm/reject/complete - дилер площади, cancel - компания. Переходы по таблице статусов, терминальные статусы неизменяемы.
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID брони"
// @Param request body dto.UpdateBookingRequest true "Действие и заметки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings/{id} [put]
func (h *APIHandler) UpdateBooking(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID брони")
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	booking, err := h.Repository.GetBookingByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Бронь не найдена")
		return
	}

	newStatus, ok := repository.BookingActionStatus(req.Action)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестное действие")
		return
	}

	// Распределение действий по ролям: дилер площади решает судьбу брони,
	// компания может только отменить свою. Модератору доступно все.
	fromDealer := false
	switch req.Action {
	case "confirm", "reject", "complete":
		if userRole != role.Admin && (userRole != role.Dealer || booking.Space.DealerID != userID) {
			h.errorResponse(c, http.StatusForbidden, "Действие доступно только дилеру площади")
			return
		}
		fromDealer = true
	case "cancel":
		if userRole != role.Admin && booking.CompanyID != userID {
			h.errorResponse(c, http.StatusForbidden, "Отменить бронь может только создавшая ее компания")
			return
		}
	}

	err = h.Repository.UpdateBookingStatus(uint(id), newStatus, req.Notes, fromDealer)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			h.errorResponse(c, http.StatusBadRequest,
				fmt.Sprintf("Переход из статуса %q в %q недопустим", booking.Status, newStatus))
			return
		}
		logrus.Error("Error updating booking: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления брони")
		return
	}

	h.successResponse(c, http.StatusOK, "Статус брони обновлен", nil)
}
