package dto

import "time"

type BalanceResponseDTO struct {
	Current           float64 `json:"current" example:"500.5"`
	Withdrawn         float64 `json:"withdrawn" example:"42"`
	TotalAdsCompleted int     `json:"total_ads_completed" example:"17"`
	Points            int     `json:"points" example:"80"`
	Status            string  `json:"status" example:"active"`
}

type WithdrawRequestDTO struct {
	Amount     float64 `json:"amount" example:"500"`
	CardNumber string  `json:"card_number" example:"2377225624"`
	BankName   string  `json:"bank_name" example:"First National"`
}

type WithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	Amount      float64    `json:"amount" example:"500"`
	Status      string     `json:"status" example:"pending"`
	CardNumber  string     `json:"card_number" example:"2377225624"`
	BankName    string     `json:"bank_name" example:"First National"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at" example:"2020-12-09T16:09:57+03:00"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

type TransactionResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	AdID         *int      `json:"ad_id,omitempty" example:"3"`
	Type         string    `json:"type" example:"ad_click"`
	EarnedAmount float64   `json:"earned_amount" example:"101.75"`
	CreatedAt    time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
