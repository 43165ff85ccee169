package handler

import (
	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Склады (Warehouses) - каталог и управление ============
	warehouses := api.Group("/warehouses")
	{
		// Каталог для всех авторизованных пользователей
		warehouses.GET("", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Agency, role.Admin), h.GetWarehouses)
		warehouses.GET("/:id", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Agency, role.Admin), h.GetWarehouse)

		// Проверка доступности площади на интервале дат
		warehouses.POST("/check-availability", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.CheckAvailability)

		// Управление площадями - только дилеры
		warehouses.POST("", authMiddleware.WithAuthCheck(role.Dealer), h.CreateWarehouse)
		warehouses.PUT("/:id", authMiddleware.WithAuthCheck(role.Dealer, role.Admin), h.UpdateWarehouse)
		warehouses.DELETE("/:id", authMiddleware.WithAuthCheck(role.Dealer, role.Admin), h.DeleteWarehouse)
		warehouses.POST("/:id/image", authMiddleware.WithAuthCheck(role.Dealer), h.UploadWarehouseImage)
	}

	// ============ Бронирования (Bookings) ============
	bookings := api.Group("/bookings")
	{
		bookings.POST("", authMiddleware.WithAuthCheck(role.Company), h.CreateBooking)
		bookings.GET("", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.GetBookings)
		bookings.GET("/:id", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.GetBooking)
		bookings.PUT("/:id", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.UpdateBooking)
	}

	// ============ Тендеры (Tenders) и предложения ============
	tenders := api.Group("/tenders")
	{
		tenders.POST("", authMiddleware.WithAuthCheck(role.Company), h.CreateTender)
		tenders.GET("", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.GetTenders)
		tenders.GET("/:id", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.GetTender)
		tenders.PUT("/:id", authMiddleware.WithAuthCheck(role.Company), h.UpdateTender)
		tenders.PUT("/:id/publish", authMiddleware.WithAuthCheck(role.Company), h.PublishTender)
		tenders.PUT("/:id/close", authMiddleware.WithAuthCheck(role.Company), h.CloseTender)
		tenders.DELETE("/:id", authMiddleware.WithAuthCheck(role.Company), h.DeleteTender)

		// Предложения в контексте тендера
		tenders.POST("/:id/quotes", authMiddleware.WithAuthCheck(role.Dealer), h.SubmitQuote)
		tenders.GET("/:id/quotes", authMiddleware.WithAuthCheck(role.Company, role.Admin), h.GetTenderQuotes)
	}

	// ============ Предложения (Quotes) ============
	quotes := api.Group("/quotes")
	{
		quotes.GET("/my", authMiddleware.WithAuthCheck(role.Dealer), h.GetMyQuotes)
		quotes.PUT("/:id/approve", authMiddleware.WithAuthCheck(role.Company, role.Admin), h.ApproveQuote)
		quotes.PUT("/:id/reject", authMiddleware.WithAuthCheck(role.Company, role.Admin), h.RejectQuote)
		quotes.GET("/:id/document", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.GetQuoteDocument)
		quotes.GET("/:id/purchase-order", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.GetPurchaseOrder)
	}

	// ============ Партнёрства (Partnerships) ============
	partnerships := api.Group("/partnerships")
	{
		partnerships.POST("", authMiddleware.WithAuthCheck(role.Dealer), h.CreatePartnership)
		partnerships.GET("", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Admin), h.GetPartnerships)
		partnerships.PUT("/:id/approve", authMiddleware.WithAuthCheck(role.Company), h.ApprovePartnership)
		partnerships.PUT("/:id/reject", authMiddleware.WithAuthCheck(role.Company), h.RejectPartnership)
	}

	// ============ Маркетинговые пакеты (Packages) ============
	packages := api.Group("/packages")
	{
		packages.GET("", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Agency, role.Admin), h.GetPackages)
		packages.GET("/:id", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Agency, role.Admin), h.GetPackage)
		packages.POST("", authMiddleware.WithAuthCheck(role.Agency), h.CreatePackage)
		packages.PUT("/:id", authMiddleware.WithAuthCheck(role.Agency, role.Admin), h.UpdatePackage)
		packages.DELETE("/:id", authMiddleware.WithAuthCheck(role.Agency, role.Admin), h.DeletePackage)
		packages.POST("/:id/image", authMiddleware.WithAuthCheck(role.Agency), h.UploadPackageImage)
	}

	// ============ Аутентификация (публичные эндпоинты) ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)            // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)                  // POST аутентификация JWT
		auth.POST("/session-login", h.AuthHandler.SessionLoginUser)   // POST сессионная авторизация (через cookies)
		auth.POST("/session-logout", h.AuthHandler.SessionLogoutUser) // POST выход из сессии (cookies)

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Agency, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Agency, role.Admin), h.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Company, role.Dealer, role.Agency, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
