package handler

import (
	"backend/internal/app/docgen"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/role"
	"backend/internal/app/storage"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КОММЕРЧЕСКИЕ ПРЕДЛОЖЕНИЯ ============

func (h *APIHandler) quoteToDTO(q *ds.Quote) dto.QuoteResponse {
	resp := dto.QuoteResponse{
		ID:         q.ID,
		TenderID:   q.TenderID,
		DealerID:   q.DealerID,
		DealerName: q.Dealer.CompanyName,
		Budget:     q.Budget,
		Comment:    q.Comment,
		Status:     q.Status,
		CreatedAt:  q.CreatedAt,
	}
	if q.DocumentURL != nil {
		resp.DocumentURL = *q.DocumentURL
	}
	return resp
}

// canQuoteTender проверяет, доступен ли тендер дилеру для подачи:
// дилер адресован напрямую, либо тендер без адресации и есть одобренное
// партнёрство с компанией
func (h *APIHandler) canQuoteTender(tender *ds.Tender, dealerID uint) (bool, error) {
	targets, err := h.Repository.GetTenderDealerIDs(tender.ID)
	if err != nil {
		return false, err
	}
	if len(targets) > 0 {
		for _, id := range targets {
			if id == dealerID {
				return true, nil
			}
		}
		return false, nil
	}
	return h.Repository.HasApprovedPartnership(dealerID, tender.CompanyID)
}

// SubmitQuote подает предложение по тендеру
// @Summary Подача предложения по тендеру
// @Description Дилер подает предложение (multipart: budget, comment, опционально document в PDF). Подача после дедлайна отклоняется независимо от сохраненного статуса тендера. Не более одного предложения от дилера на тендер.
// @Tags Quotes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тендера"
// @Param budget formData number true "Сумма предложения"
// @Param comment formData string false "Комментарий"
// @Param document formData file false "Документ предложения (PDF)"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/tenders/{id}/quotes [post]
func (h *APIHandler) SubmitQuote(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	tenderID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || tenderID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID тендера")
		return
	}

	tender, err := h.Repository.GetTenderByID(uint(tenderID))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Тендер не найден")
		return
	}

	// Подача допустима только по эффективно активному тендеру: черновики,
	// закрытые и активные с истёкшим дедлайном отклоняются одинаково
	if repository.EffectiveTenderStatus(tender, time.Now()) != ds.TenderActive {
		h.errorResponse(c, http.StatusBadRequest, "Тендер не принимает предложения")
		return
	}

	allowed, err := h.canQuoteTender(tender, userID)
	if err != nil {
		logrus.Error("Error checking tender access: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка проверки доступа к тендеру")
		return
	}
	if !allowed {
		h.errorResponse(c, http.StatusForbidden, "Тендер недоступен этому дилеру")
		return
	}

	budgetStr := c.PostForm("budget")
	budget, err := strconv.ParseFloat(budgetStr, 64)
	if err != nil || budget <= 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверная сумма предложения")
		return
	}

	quote := ds.Quote{
		TenderID:  uint(tenderID),
		DealerID:  userID,
		Budget:    budget,
		Comment:   c.PostForm("comment"),
		Status:    ds.QuoteSubmitted,
		CreatedAt: time.Now(),
	}

	// Документ опционален; грузим до вставки, чтобы не оставить предложение
	// без заявленного файла
	if file, err := c.FormFile("document"); err == nil {
		if h.MinIOClient == nil {
			h.errorResponse(c, http.StatusInternalServerError, "Хранилище файлов не настроено")
			return
		}
		src, err := file.Open()
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Не удалось прочитать файл")
			return
		}
		fileData, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Не удалось прочитать файл")
			return
		}

		objectName, err := h.MinIOClient.UploadFile(fileData, file.Filename, storage.FolderQuotes)
		if err != nil {
			logrus.Error("Error uploading quote document: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки документа")
			return
		}
		quote.DocumentURL = &objectName
	}

	if err := h.Repository.CreateQuote(&quote); err != nil {
		if errors.Is(err, repository.ErrDuplicateQuote) {
			h.errorResponse(c, http.StatusConflict, "Предложение по этому тендеру уже подано")
			return
		}
		logrus.Error("Error creating quote: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка подачи предложения")
		return
	}

	created, err := h.Repository.GetQuoteByID(quote.ID)
	if err != nil {
		logrus.Error("Error loading created quote: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка подачи предложения")
		return
	}

	c.JSON(http.StatusCreated, h.quoteToDTO(created))
}

// GetTenderQuotes получает предложения по тендеру
// @Summary Получение предложений по тендеру
// @Description Возвращает все предложения тендера (владелец тендера или модератор)
// @Tags Quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тендера"
// @Success 200 {object} dto.QuoteListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tenders/{id}/quotes [get]
func (h *APIHandler) GetTenderQuotes(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	tenderID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || tenderID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID тендера")
		return
	}

	tender, err := h.Repository.GetTenderByID(uint(tenderID))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Тендер не найден")
		return
	}

	if userRole != role.Admin && tender.CompanyID != userID {
		h.errorResponse(c, http.StatusForbidden, "Предложения видит только владелец тендера")
		return
	}

	quotes, err := h.Repository.GetQuotesByTender(uint(tenderID))
	if err != nil {
		logrus.Error("Error getting quotes: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения предложений")
		return
	}

	dtoQuotes := make([]dto.QuoteResponse, len(quotes))
	for i := range quotes {
		dtoQuotes[i] = h.quoteToDTO(&quotes[i])
	}

	c.JSON(http.StatusOK, dto.QuoteListResponse{
		Quotes: dtoQuotes,
		Total:  len(dtoQuotes),
	})
}

// GetMyQuotes получает предложения текущего дилера
// @Summary Получение своих предложений
// @Description Возвращает все предложения, поданные текущим дилером
// @Tags Quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuoteListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes/my [get]
func (h *APIHandler) GetMyQuotes(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	quotes, err := h.Repository.GetQuotesByDealer(userID)
	if err != nil {
		logrus.Error("Error getting dealer quotes: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения предложений")
		return
	}

	dtoQuotes := make([]dto.QuoteResponse, len(quotes))
	for i := range quotes {
		dtoQuotes[i] = h.quoteToDTO(&quotes[i])
	}

	c.JSON(http.StatusOK, dto.QuoteListResponse{
		Quotes: dtoQuotes,
		Total:  len(dtoQuotes),
	})
}

// resolveQuoteForOwner загружает предложение и проверяет, что пользователь -
// владелец тендера или модератор
func (h *APIHandler) resolveQuoteForOwner(c *gin.Context) (*ds.Quote, bool) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return nil, false
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID предложения")
		return nil, false
	}

	quote, err := h.Repository.GetQuoteByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Предложение не найдено")
		return nil, false
	}

	if userRole != role.Admin && quote.Tender.CompanyID != userID {
		h.errorResponse(c, http.StatusForbidden, "Решение по предложению принимает владелец тендера")
		return nil, false
	}

	return quote, true
}

// ApproveQuote одобряет предложение
// @Summary Одобрение предложения
// @Description Переводит предложение из submitted в approved (владелец тендера). Остальные предложения тендера не затрагиваются.
// @Tags Quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID предложения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/{id}/approve [put]
func (h *APIHandler) ApproveQuote(c *gin.Context) {
	h.decideQuote(c, ds.QuoteApproved, "Предложение одобрено")
}

// RejectQuote отклоняет предложение
// @Summary Отклонение предложения
// @Description Переводит предложение из submitted в rejected (владелец тендера)
// @Tags Quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID предложения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/{id}/reject [put]
func (h *APIHandler) RejectQuote(c *gin.Context) {
	h.decideQuote(c, ds.QuoteRejected, "Предложение отклонено")
}

func (h *APIHandler) decideQuote(c *gin.Context, newStatus, message string) {
	quote, ok := h.resolveQuoteForOwner(c)
	if !ok {
		return
	}

	if err := h.Repository.UpdateQuoteStatus(quote.ID, newStatus); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			h.errorResponse(c, http.StatusBadRequest, "Решение по предложению уже принято")
			return
		}
		logrus.Error("Error updating quote status: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления предложения")
		return
	}

	h.successResponse(c, http.StatusOK, message, nil)
}

// GetQuoteDocument отдает временную ссылку на документ предложения
// @Summary Получение документа предложения
// @Description Возвращает временный URL документа (дилер-автор, владелец тендера или модератор)
// @Tags Quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID предложения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/{id}/document [get]
func (h *APIHandler) GetQuoteDocument(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID предложения")
		return
	}

	quote, err := h.Repository.GetQuoteByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Предложение не найдено")
		return
	}

	if userRole != role.Admin && quote.DealerID != userID && quote.Tender.CompanyID != userID {
		h.errorResponse(c, http.StatusForbidden, "Нет доступа к документу")
		return
	}

	if quote.DocumentURL == nil {
		h.errorResponse(c, http.StatusNotFound, "У предложения нет документа")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище файлов не настроено")
		return
	}

	url, err := h.MinIOClient.GetFileURL(*quote.DocumentURL)
	if err != nil {
		logrus.Error("Error generating document URL: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения документа")
		return
	}

	h.successResponse(c, http.StatusOK, "", gin.H{"url": url})
}

// GetPurchaseOrder формирует заказ-наряд по одобренному предложению
// @Summary Формирование заказ-наряда
// @Description Возвращает текст заказ-наряда по одобренному предложению (владелец тендера, дилер-автор или модератор)
// @Tags Quotes
// @Produce plain
// @Security BearerAuth
// @Param id path int true "ID предложения"
// @Success 200 {string} string "Текст заказ-наряда"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/{id}/purchase-order [get]
func (h *APIHandler) GetPurchaseOrder(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID предложения")
		return
	}

	quote, err := h.Repository.GetQuoteByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Предложение не найдено")
		return
	}

	if userRole != role.Admin && quote.DealerID != userID && quote.Tender.CompanyID != userID {
		h.errorResponse(c, http.StatusForbidden, "Нет доступа к заказ-наряду")
		return
	}

	if quote.Status != ds.QuoteApproved {
		h.errorResponse(c, http.StatusBadRequest, "Заказ-наряд формируется только по одобренному предложению")
		return
	}

	doc := docgen.PurchaseOrder(docgen.PurchaseOrderData{
		Tender:      quote.Tender,
		Quote:       *quote,
		Company:     quote.Tender.Company,
		Dealer:      quote.Dealer,
		GeneratedAt: time.Now(),
	})

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc))
}
