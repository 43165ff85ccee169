package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Складские площади (Warehouses) ============

type WarehouseResponse struct {
	ID            uint    `json:"id"`
	DealerID      uint    `json:"dealer_id"`
	DealerName    string  `json:"dealer_name"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	TotalArea     int     `json:"total_area"`
	AvailableArea int     `json:"available_area"`
	DailyRate     float64 `json:"daily_rate"`
	Status        string  `json:"status"`
	ImageURL      string  `json:"image_url"`
}

type WarehouseListResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
	Total      int                 `json:"total"`
}

type CreateWarehouseRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	TotalArea     int     `json:"total_area" binding:"required,gt=0"`
	AvailableArea int     `json:"available_area" binding:"required,gt=0"`
	DailyRate     float64 `json:"daily_rate" binding:"required,gt=0"`
}

type UpdateWarehouseRequest struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	TotalArea     int     `json:"total_area" binding:"omitempty,gt=0"`
	AvailableArea int     `json:"available_area" binding:"omitempty,gt=0"`
	DailyRate     float64 `json:"daily_rate" binding:"omitempty,gt=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CheckAvailabilityRequest struct {
	SpaceID      uint   `json:"space_id" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"` // формат 2006-01-02
	EndDate      string `json:"end_date" binding:"required"`
	RequiredArea int    `json:"required_area" binding:"required,gte=1"`
}

type CheckAvailabilityResponse struct {
	Available     bool `json:"available"`
	AvailableArea int  `json:"available_area"`
}

// ============ Бронирования (Bookings) ============

type CreateBookingRequest struct {
	SpaceID      uint    `json:"space_id" binding:"required"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
	RequiredArea int     `json:"required_area" binding:"required,gte=1"`
	TotalPrice   float64 `json:"total_price" binding:"required,gt=0"`
	Notes        string  `json:"notes"`
}

type BookingResponse struct {
	ID           uint      `json:"id"`
	SpaceID      uint      `json:"space_id"`
	SpaceName    string    `json:"space_name"`
	CompanyID    uint      `json:"company_id"`
	CompanyName  string    `json:"company_name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	RequiredArea int       `json:"required_area"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	CompanyNotes string    `json:"company_notes,omitempty"`
	DealerNotes  string    `json:"dealer_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type UpdateBookingRequest struct {
	Action string `json:"action" binding:"required,oneof=confirm reject complete cancel"`
	Notes  string `json:"notes"`
}

// ============ Тендеры (Tenders) ============

type CreateTenderRequest struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
	Deadline    string  `json:"deadline" binding:"required"` // формат 2006-01-02
	DealerIDs   []uint  `json:"dealer_ids"`                  // пусто = все партнёры
}

type UpdateTenderRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget" binding:"omitempty,gt=0"`
	Deadline    string  `json:"deadline"`
	DealerIDs   []uint  `json:"dealer_ids"`
}

type TenderResponse struct {
	ID          uint      `json:"id"`
	CompanyID   uint      `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Deadline    string    `json:"deadline"`
	Status      string    `json:"status"` // производный статус на момент чтения
	DealerIDs   []uint    `json:"dealer_ids,omitempty"`
	QuoteCount  int       `json:"quote_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type TenderListResponse struct {
	Tenders []TenderResponse `json:"tenders"`
	Total   int              `json:"total"`
}

// ============ Коммерческие предложения (Quotes) ============

type QuoteResponse struct {
	ID          uint      `json:"id"`
	TenderID    uint      `json:"tender_id"`
	DealerID    uint      `json:"dealer_id"`
	DealerName  string    `json:"dealer_name"`
	Budget      float64   `json:"budget"`
	DocumentURL string    `json:"document_url,omitempty"`
	Comment     string    `json:"comment,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}

// ============ Партнёрства (Partnerships) ============

type CreatePartnershipRequest struct {
	CompanyID uint `json:"company_id" binding:"required"`
}

type PartnershipResponse struct {
	ID          uint      `json:"id"`
	DealerID    uint      `json:"dealer_id"`
	DealerName  string    `json:"dealer_name"`
	CompanyID   uint      `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type PartnershipListResponse struct {
	Partnerships []PartnershipResponse `json:"partnerships"`
	Total        int                   `json:"total"`
}

// ============ Маркетинговые пакеты (Packages) ============

type PackageResponse struct {
	ID          uint    `json:"id"`
	AgencyID    uint    `json:"agency_id"`
	AgencyName  string  `json:"agency_name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Status      string  `json:"status"`
}

type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
	Total    int               `json:"total"`
}

type CreatePackageRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdatePackageRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"omitempty,gt=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID          uint   `json:"id"`
	Login       string `json:"login"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	Role        int    `json:"role"`
}

type RegisterRequest struct {
	Login       string `json:"login" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"full_name" binding:"required"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email" binding:"omitempty,email"`
	Role        int    `json:"role" binding:"omitempty,gte=0,lte=3"`
}

type UpdateUserRequest struct {
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	Password    string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
