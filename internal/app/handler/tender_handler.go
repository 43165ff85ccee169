package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/role"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ТЕНДЕРЫ ============

// tenderToDTO конвертирует тендер, подставляя производный статус на момент чтения
func (h *APIHandler) tenderToDTO(t *ds.Tender, withDealers bool) dto.TenderResponse {
	resp := dto.TenderResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		CompanyName: t.Company.CompanyName,
		Title:       t.Title,
		Category:    t.Category,
		Description: t.Description,
		Budget:      t.Budget,
		Deadline:    t.Deadline.Format(dateLayout),
		Status:      repository.EffectiveTenderStatus(t, time.Now()),
		QuoteCount:  h.Repository.CountQuotesByTender(t.ID),
		CreatedAt:   t.CreatedAt,
	}
	if withDealers {
		if ids, err := h.Repository.GetTenderDealerIDs(t.ID); err == nil {
			resp.DealerIDs = ids
		}
	}
	return resp
}

// CreateTender создает тендер в статусе draft
// @Summary Создание тендера
// @Description Создает черновик тендера (только для компаний). Пустой список дилеров означает адресацию всем одобренным партнёрам.
// @Tags Tenders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTenderRequest true "Данные тендера"
// @Success 201 {object} dto.TenderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tenders [post]
func (h *APIHandler) CreateTender(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.CreateTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный формат дедлайна (ожидается ГГГГ-ММ-ДД)")
		return
	}

	tender := ds.Tender{
		CompanyID:   userID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    deadline,
		Status:      ds.TenderDraft,
		CreatedAt:   time.Now(),
	}

	if err := h.Repository.CreateTender(&tender, req.DealerIDs); err != nil {
		logrus.Error("Error creating tender: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания тендера")
		return
	}

	created, err := h.Repository.GetTenderByID(tender.ID)
	if err != nil {
		logrus.Error("Error loading created tender: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания тендера")
		return
	}

	c.JSON(http.StatusCreated, h.tenderToDTO(created, true))
}

// GetTenders получает список тендеров
// @Summary Получение списка тендеров
// @Description Компания видит свои тендеры, дилер - активные доступные ему, модератор - все. Статус в ответе производный: активный тендер с истёкшим дедлайном отдаётся как closed.
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TenderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tenders [get]
func (h *APIHandler) GetTenders(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var tenders []ds.Tender
	switch userRole {
	case role.Dealer:
		tenders, err = h.Repository.GetTendersForDealer(userID)
	case role.Admin:
		tenders, err = h.Repository.GetAllTenders()
	default:
		tenders, err = h.Repository.GetTendersForCompany(userID)
	}
	if err != nil {
		logrus.Error("Error getting tenders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения тендеров")
		return
	}

	dtoTenders := make([]dto.TenderResponse, len(tenders))
	for i := range tenders {
		dtoTenders[i] = h.tenderToDTO(&tenders[i], false)
	}

	c.JSON(http.StatusOK, dto.TenderListResponse{
		Tenders: dtoTenders,
		Total:   len(dtoTenders),
	})
}

// GetTender получает один тендер
// @Summary Получение тендера по ID
// @Description Возвращает детальную информацию о тендере с адресными дилерами
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тендера"
// @Success 200 {object} dto.TenderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tenders/{id} [get]
func (h *APIHandler) GetTender(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID тендера")
		return
	}

	tender, err := h.Repository.GetTenderByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Тендер не найден")
		return
	}

	c.JSON(http.StatusOK, h.tenderToDTO(tender, true))
}

// UpdateTender обновляет поля черновика тендера
// @Summary Обновление тендера
// @Description Обновляет поля тендера в статусе draft (только владелец)
// @Tags Tenders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тендера"
// @Param request body dto.UpdateTenderRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tenders/{id} [put]
func (h *APIHandler) UpdateTender(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID тендера")
		return
	}

	var req dto.UpdateTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var title, category, description *string
	var budget *float64
	var deadline *time.Time

	if req.Title != "" {
		title = &req.Title
	}
	if req.Category != "" {
		category = &req.Category
	}
	if req.Description != "" {
		description = &req.Description
	}
	if req.Budget > 0 {
		budget = &req.Budget
	}
	if req.Deadline != "" {
		parsed, err := time.Parse(dateLayout, req.Deadline)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный формат дедлайна (ожидается ГГГГ-ММ-ДД)")
			return
		}
		deadline = &parsed
	}

	err = h.Repository.UpdateTenderFields(uint(id), userID, title, category, description, budget, deadline)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.DealerIDs != nil {
		if err := h.Repository.ReplaceTenderDealers(uint(id), req.DealerIDs); err != nil {
			logrus.Error("Error replacing tender dealers: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления адресных дилеров")
			return
		}
	}

	h.successResponse(c, http.StatusOK, "Тендер успешно обновлен", nil)
}

// PublishTender публикует тендер
// @Summary Публикация тендера
// @Description Переводит тендер из статуса draft в active (только владелец, дедлайн в будущем)
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тендера"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tenders/{id}/publish [put]
func (h *APIHandler) PublishTender(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID тендера")
		return
	}

	if err := h.Repository.PublishTender(uint(id), userID); err != nil {
		logrus.Error("Error publishing tender: ", err)
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Тендер успешно опубликован", nil)
}

// CloseTender закрывает тендер
// @Summary Закрытие тендера
// @Description Явно переводит тендер из active в closed (только владелец)
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тендера"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tenders/{id}/close [put]
func (h *APIHandler) CloseTender(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID тендера")
		return
	}

	if err := h.Repository.CloseTender(uint(id), userID); err != nil {
		logrus.Error("Error closing tender: ", err)
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Тендер успешно закрыт", nil)
}

// DeleteTender удаляет черновик тендера
// @Summary Удаление тендера
// @Description Удаляет тендер в статусе draft (только владелец)
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тендера"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tenders/{id} [delete]
func (h *APIHandler) DeleteTender(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID тендера")
		return
	}

	if err := h.Repository.DeleteTender(uint(id), userID); err != nil {
		logrus.Error("Error deleting tender: ", err)
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Тендер успешно удален", nil)
}
