package dto

type CallbackResponseDTO struct {
	Success       bool   `json:"success" example:"true"`
	Message       string `json:"message" example:"payment processed"`
	Status        string `json:"status" example:"completed"`
	TransactionID string `json:"transaction_id" example:"gw-55012"`
}
