package handler

import (
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

// ============ ДОМЕН СКЛАДСКИЕ ПЛОЩАДИ ============

func (h *APIHandler) warehouseToDTO(space *ds.StorageSpace) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:            space.ID,
		DealerID:      space.DealerID,
		DealerName:    space.Dealer.CompanyName,
		Name:          space.Name,
		Address:       space.Address,
		Description:   space.Description,
		TotalArea:     space.TotalArea,
		AvailableArea: space.AvailableArea,
		DailyRate:     space.DailyRate,
		Status:        space.Status,
		ImageURL:      imageOrDefault(space.ImageURL),
	}
}

// GetWarehouses получает список складских площадей
// @Summary Получение списка складов
// @Description Возвращает список активных площадей с поиском по названию. Дилер с параметром mine=true видит свои площади.
// @Tags Warehouses
// @Produce json
// @Param query query string false "Поиск по названию"
// @Param mine query bool false "Только собственные площади (для дилера)"
// @Success 200 {object} dto.WarehouseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/warehouses [get]
func (h *APIHandler) GetWarehouses(c *gin.Context) {
	searchQuery := c.Query("query")

	// Дилер может запросить собственные площади, включая неактивные
	var dealerID *uint
	if c.Query("mine") == "true" {
		userID, userRole, err := h.getUserFromContext(c)
		if err == nil && userRole == role.Dealer {
			dealerID = &userID
		}
	}

	spaces, err := h.Repository.GetSpaces(searchQuery, dealerID)
	if err != nil {
		logrus.Error("Error getting warehouses: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения складов")
		return
	}

	dtoSpaces := make([]dto.WarehouseResponse, len(spaces))
	for i := range spaces {
		dtoSpaces[i] = h.warehouseToDTO(&spaces[i])
	}

	c.JSON(http.StatusOK, dto.WarehouseListResponse{
		Warehouses: dtoSpaces,
		Total:      len(dtoSpaces),
	})
}

// GetWarehouse получает одну складскую площадь
// @Summary Получение склада по ID
// @Description Возвращает детальную информацию о складской площади
// @Tags Warehouses
// @Produce json
// @Param id path int true "ID площади"
// @Success 200 {object} dto.WarehouseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/warehouses/{id} [get]
func (h *APIHandler) GetWarehouse(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID площади")
		return
	}

	space, err := h.Repository.GetSpaceByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Площадь не найдена")
		return
	}

	c.JSON(http.StatusOK, h.warehouseToDTO(space))
}

// CreateWarehouse создает складскую площадь
// @Summary Создание склада
// @Description Создает новую складскую площадь (только для дилеров)
// @Tags Warehouses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWarehouseRequest true "Данные площади"
// @Success 201 {object} dto.WarehouseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/warehouses [post]
func (h *APIHandler) CreateWarehouse(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if req.AvailableArea > req.TotalArea {
		h.errorResponse(c, http.StatusBadRequest, "Свободная площадь не может превышать общую")
		return
	}

	space := ds.StorageSpace{
		DealerID:      userID,
		Name:          req.Name,
		Address:       req.Address,
		Description:   req.Description,
		TotalArea:     req.TotalArea,
		AvailableArea: req.AvailableArea,
		DailyRate:     req.DailyRate,
		Status:        ds.SpaceActive,
		CreatedAt:     time.Now(),
	}

	if err := h.Repository.CreateSpace(&space); err != nil {
		logrus.Error("Error creating warehouse: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания площади")
		return
	}

	c.JSON(http.StatusCreated, h.warehouseToDTO(&space))
}

// UpdateWarehouse обновляет складскую площадь
// @Summary Обновление склада
// @Description Обновляет данные площади (только дилер-владелец)
// @Tags Warehouses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID площади"
// @Param request body dto.UpdateWarehouseRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/warehouses/{id} [put]
func (h *APIHandler) UpdateWarehouse(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID площади")
		return
	}

	var req dto.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	// Подготавливаем указатели на поля
	var name, address, description, status *string
	var totalArea, availableArea *int
	var dailyRate *float64

	if req.Name != "" {
		name = &req.Name
	}
	if req.Address != "" {
		address = &req.Address
	}
	if req.Description != "" {
		description = &req.Description
	}
	if req.Status != "" {
		status = &req.Status
	}
	if req.TotalArea > 0 {
		totalArea = &req.TotalArea
	}
	if req.AvailableArea > 0 {
		availableArea = &req.AvailableArea
	}
	if req.DailyRate > 0 {
		dailyRate = &req.DailyRate
	}

	err = h.Repository.UpdateSpace(uint(id), userID, name, address, description, status, totalArea, availableArea, dailyRate)
	if err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Площадь не найдена или принадлежит другому дилеру")
			return
		}
		logrus.Error("Error updating warehouse: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления площади")
		return
	}

	h.successResponse(c, http.StatusOK, "Площадь успешно обновлена", nil)
}

// DeleteWarehouse удаляет складскую площадь
// @Summary Удаление склада
// @Description Логически удаляет площадь (только дилер-владелец)
// @Tags Warehouses
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID площади"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/warehouses/{id} [delete]
func (h *APIHandler) DeleteWarehouse(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID площади")
		return
	}

	// Сначала получаем площадь чтобы удалить изображение
	space, _ := h.Repository.GetSpaceByID(uint(id))
	if space != nil && space.DealerID == userID && space.ImageURL != nil && *space.ImageURL != "" {
		if h.MinIOClient != nil {
			if err := h.MinIOClient.DeleteFile(*space.ImageURL); err != nil {
				logrus.Warnf("Failed to delete image from MinIO: %v", err)
			}
		}
	}

	err = h.Repository.DeleteSpace(uint(id), userID)
	if err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Площадь не найдена или принадлежит другому дилеру")
			return
		}
		logrus.Error("Error deleting warehouse: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления площади")
		return
	}

	h.successResponse(c, http.StatusOK, "Площадь успешно удалена", nil)
}

// UploadWarehouseImage загружает фотографию площади
// @Summary Загрузка фотографии склада
// @Description Загружает фотографию площади в MinIO (только дилер-владелец)
// @Tags Warehouses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID площади"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/warehouses/{id}/image [post]
func (h *APIHandler) UploadWarehouseImage(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID площади")
		return
	}

	space, err := h.Repository.GetSpaceByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Площадь не найдена")
		return
	}
	if space.DealerID != userID {
		h.errorResponse(c, http.StatusForbidden, "Площадь принадлежит другому дилеру")
		return
	}

	// Получаем файл из запроса
	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище файлов не настроено")
		return
	}

	// Удаляем старое изображение из MinIO (если есть)
	if space.ImageURL != nil && *space.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*space.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image %s: %v", *space.ImageURL, err)
		}
	}

	// Ошибка загрузки прерывает операцию целиком
	imageURL, err := h.MinIOClient.UploadFile(fileData, file.Filename, storage.FolderWarehouses)
	if err != nil {
		logrus.Error("Error uploading to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	if err := h.Repository.UpdateSpaceImage(uint(id), imageURL); err != nil {
		logrus.Error("Error updating warehouse image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления изображения")
		return
	}

	h.successResponse(c, http.StatusOK, "Изображение успешно загружено", gin.H{
		"image_url": imageURL,
	})
}

// CheckAvailability проверяет доступность площади на интервале дат
// @Summary Проверка доступности площади
// @Description Считает остаток свободной площади на интервале дат с учетом пересекающихся броней в статусах pending/confirmed
// @Tags Warehouses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckAvailabilityRequest true "Параметры проверки"
// @Success 200 {object} dto.CheckAvailabilityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/warehouses/check-availability [post]
func (h *APIHandler) CheckAvailability(c *gin.Context) {
	var req dto.CheckAvailabilityRequest
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

	// Дешевая верхняя граница: больше рекламируемой площади запросить нельзя
	if req.RequiredArea > space.AvailableArea {
		h.errorResponse(c, http.StatusBadRequest, "Запрошенная площадь превышает рекламируемую свободную площадь")
		return
	}

	result, err := h.Repository.CheckAvailability(req.SpaceID, start, end, req.RequiredArea)
	if err != nil {
		logrus.Error("Error checking availability: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка проверки доступности")
		return
	}

	c.JSON(http.StatusOK, dto.CheckAvailabilityResponse{
		Available:     result.Available,
		AvailableArea: result.AvailableArea,
	})
}
