package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/role"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПАРТНЁРСТВА ============

func partnershipToDTO(p *ds.Partnership) dto.PartnershipResponse {
	return dto.PartnershipResponse{
		ID:          p.ID,
		DealerID:    p.DealerID,
		DealerName:  p.Dealer.CompanyName,
		CompanyID:   p.CompanyID,
		CompanyName: p.Company.CompanyName,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

// CreatePartnership отправляет запрос на партнёрство
// @Summary Запрос партнёрства
// @Description Дилер отправляет компании запрос на партнёрство. Повторный запрос той же компании отклоняется.
// @Tags Partnerships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePartnershipRequest true "ID компании"
// @Success 201 {object} dto.PartnershipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/partnerships [post]
func (h *APIHandler) CreatePartnership(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.CreatePartnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	company, err := h.Repository.GetUserByID(req.CompanyID)
	if err != nil || role.Role(company.Role) != role.Company {
		h.errorResponse(c, http.StatusNotFound, "Компания не найдена")
		return
	}

	partnership := ds.Partnership{
		DealerID:  userID,
		CompanyID: req.CompanyID,
		Status:    ds.PartnershipPending,
		CreatedAt: time.Now(),
	}

	if err := h.Repository.CreatePartnership(&partnership); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			h.errorResponse(c, http.StatusConflict, "Запрос партнёрства этой компании уже существует")
			return
		}
		logrus.Error("Error creating partnership: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания запроса")
		return
	}

	created, err := h.Repository.GetPartnershipByID(partnership.ID)
	if err != nil {
		logrus.Error("Error loading created partnership: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания запроса")
		return
	}

	c.JSON(http.StatusCreated, partnershipToDTO(created))
}

// GetPartnerships получает список партнёрств
// @Summary Получение списка партнёрств
// @Description Дилер видит свои запросы, компания - адресованные ей, модератор - все
// @Tags Partnerships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PartnershipListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/partnerships [get]
func (h *APIHandler) GetPartnerships(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var partnerships []ds.Partnership
	switch userRole {
	case role.Dealer:
		partnerships, err = h.Repository.GetPartnershipsForDealer(userID)
	case role.Admin:
		partnerships, err = h.Repository.GetAllPartnerships()
	default:
		partnerships, err = h.Repository.GetPartnershipsForCompany(userID)
	}
	if err != nil {
		logrus.Error("Error getting partnerships: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения партнёрств")
		return
	}

	dtoPartnerships := make([]dto.PartnershipResponse, len(partnerships))
	for i := range partnerships {
		dtoPartnerships[i] = partnershipToDTO(&partnerships[i])
	}

	c.JSON(http.StatusOK, dto.PartnershipListResponse{
		Partnerships: dtoPartnerships,
		Total:        len(dtoPartnerships),
	})
}

// ApprovePartnership одобряет запрос партнёрства
// @Summary Одобрение партнёрства
// @Description Компания-адресат одобряет запрос в статусе pending
// @Tags Partnerships
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID запроса"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/partnerships/{id}/approve [put]
func (h *APIHandler) ApprovePartnership(c *gin.Context) {
	h.decidePartnership(c, ds.PartnershipApproved, "Партнёрство одобрено")
}

// RejectPartnership отклоняет запрос партнёрства
// @Summary Отклонение партнёрства
// @Description Компания-адресат отклоняет запрос в статусе pending
// @Tags Partnerships
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID запроса"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/partnerships/{id}/reject [put]
func (h *APIHandler) RejectPartnership(c *gin.Context) {
	h.decidePartnership(c, ds.PartnershipRejected, "Партнёрство отклонено")
}

func (h *APIHandler) decidePartnership(c *gin.Context, newStatus, message string) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID запроса")
		return
	}

	if err := h.Repository.UpdatePartnershipStatus(uint(id), userID, newStatus); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			h.errorResponse(c, http.StatusBadRequest, "Решение по запросу уже принято или запрос адресован не вам")
			return
		}
		logrus.Error("Error updating partnership: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления запроса")
		return
	}

	h.successResponse(c, http.StatusOK, message, nil)
}
