package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/role"
	"backend/internal/app/storage"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН МАРКЕТИНГОВЫЕ ПАКЕТЫ ============

func packageToDTO(p *ds.ServicePackage) dto.PackageResponse {
	return dto.PackageResponse{
		ID:          p.ID,
		AgencyID:    p.AgencyID,
		AgencyName:  p.Agency.CompanyName,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		ImageURL:    imageOrDefault(p.ImageURL),
		Status:      p.Status,
	}
}

// GetPackages получает список маркетинговых пакетов
// @Summary Получение списка пакетов
// @Description Возвращает активные пакеты с поиском по названию. Агентство с параметром mine=true видит все свои пакеты.
// @Tags Packages
// @Produce json
// @Security BearerAuth
// @Param query query string false "Поиск по названию"
// @Param mine query bool false "Только свои пакеты (для агентств)"
// @Success 200 {object} dto.PackageListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/packages [get]
func (h *APIHandler) GetPackages(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	query := c.Query("query")

	var agencyID *uint
	if c.Query("mine") == "true" && userRole == role.Agency {
		agencyID = &userID
	}

	packages, err := h.Repository.GetPackages(query, agencyID)
	if err != nil {
		logrus.Error("Error getting packages: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения пакетов")
		return
	}

	dtoPackages := make([]dto.PackageResponse, len(packages))
	for i := range packages {
		dtoPackages[i] = packageToDTO(&packages[i])
	}

	c.JSON(http.StatusOK, dto.PackageListResponse{
		Packages: dtoPackages,
		Total:    len(dtoPackages),
	})
}

// GetPackage получает один пакет
// @Summary Получение пакета по ID
// @Description Возвращает информацию о маркетинговом пакете
// @Tags Packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пакета"
// @Success 200 {object} dto.PackageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id} [get]
func (h *APIHandler) GetPackage(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пакета")
		return
	}

	pkg, err := h.Repository.GetPackageByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Пакет не найден")
		return
	}

	c.JSON(http.StatusOK, packageToDTO(pkg))
}

// CreatePackage создает маркетинговый пакет
// @Summary Создание пакета
// @Description Создает маркетинговый пакет (только для агентств)
// @Tags Packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePackageRequest true "Данные пакета"
// @Success 201 {object} dto.PackageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/packages [post]
func (h *APIHandler) CreatePackage(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	pkg := ds.ServicePackage{
		AgencyID:    userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Status:      ds.PackageActive,
	}

	if err := h.Repository.CreatePackage(&pkg); err != nil {
		logrus.Error("Error creating package: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания пакета")
		return
	}

	created, err := h.Repository.GetPackageByID(pkg.ID)
	if err != nil {
		logrus.Error("Error loading created package: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания пакета")
		return
	}

	c.JSON(http.StatusCreated, packageToDTO(created))
}

// UpdatePackage обновляет пакет
// @Summary Обновление пакета
// @Description Обновляет поля пакета (только владелец-агентство)
// @Tags Packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пакета"
// @Param request body dto.UpdatePackageRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/packages/{id} [put]
func (h *APIHandler) UpdatePackage(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пакета")
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var title, description, category, status *string
	var price *float64

	if req.Title != "" {
		title = &req.Title
	}
	if req.Description != "" {
		description = &req.Description
	}
	if req.Category != "" {
		category = &req.Category
	}
	if req.Status != "" {
		status = &req.Status
	}
	if req.Price > 0 {
		price = &req.Price
	}

	if err := h.Repository.UpdatePackage(uint(id), userID, title, description, category, status, price); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Пакет успешно обновлен", nil)
}

// DeletePackage удаляет пакет
// @Summary Удаление пакета
// @Description Логически удаляет пакет (только владелец-агентство)
// @Tags Packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пакета"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/packages/{id} [delete]
func (h *APIHandler) DeletePackage(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пакета")
		return
	}

	pkg, _ := h.Repository.GetPackageByID(uint(id))
	if pkg != nil && pkg.AgencyID == userID && pkg.ImageURL != nil && *pkg.ImageURL != "" {
		if h.MinIOClient != nil {
			if err := h.MinIOClient.DeleteFile(*pkg.ImageURL); err != nil {
				logrus.Warnf("Failed to delete image from MinIO: %v", err)
			}
		}
	}

	if err := h.Repository.DeletePackage(uint(id), userID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Пакет успешно удален", nil)
}

// UploadPackageImage загружает изображение пакета
// @Summary Загрузка изображения пакета
// @Description Загружает изображение пакета в MinIO (только владелец-агентство)
// @Tags Packages
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пакета"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id}/image [post]
func (h *APIHandler) UploadPackageImage(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пакета")
		return
	}

	pkg, err := h.Repository.GetPackageByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Пакет не найден")
		return
	}
	if pkg.AgencyID != userID {
		h.errorResponse(c, http.StatusForbidden, "Изображение может загрузить только владелец пакета")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
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

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище файлов не настроено")
		return
	}

	// Удаляем старое изображение из MinIO (если есть)
	if pkg.ImageURL != nil && *pkg.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*pkg.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image %s: %v", *pkg.ImageURL, err)
		}
	}

	imageURL, err := h.MinIOClient.UploadFile(fileData, file.Filename, storage.FolderPackages)
	if err != nil {
		logrus.Error("Error uploading to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	if err := h.Repository.UpdatePackageImage(uint(id), imageURL); err != nil {
		logrus.Error("Error saving image URL: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения изображения")
		return
	}

	h.successResponse(c, http.StatusOK, "Изображение успешно загружено", gin.H{"image_url": imageURL})
}
