package models

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message" example:"E-Moped Business Plan API"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

type BusinessPlanResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    PlanContent `json:"data"`
}

type CreatePlanResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id"`
}

type ImageUploadResponse struct {
	Success  bool   `json:"success" example:"true"`
	ImageURL string `json:"imageUrl"`
	ImageID  string `json:"imageId"`
}

type ImageListResponse struct {
	Success bool         `json:"success" example:"true"`
	Data    []ImageAsset `json:"data"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
