package dto

import "time"

type AccountResponseDTO struct {
	ID                int       `json:"id" example:"1"`
	Login             string    `json:"login" example:"user42"`
	Status            string    `json:"status" example:"active"`
	Balance           float64   `json:"balance" example:"500.5"`
	Withdrawn         float64   `json:"withdrawn" example:"42"`
	TotalAdsCompleted int       `json:"total_ads_completed" example:"17"`
	Points            int       `json:"points" example:"80"`
	IsAdmin           bool      `json:"is_admin" example:"false"`
	CreatedAt         time.Time `json:"created_at"`
}

type SetStatusRequestDTO struct {
	Status string `json:"status" example:"active"`
}

type DepositRequestDTO struct {
	Amount float64 `json:"amount" example:"100"`
}

type AwardPointsRequestDTO struct {
	Points int `json:"points" example:"50"`
}

type ResolveWithdrawalRequestDTO struct {
	Decision string `json:"decision" example:"approved"`
	Notes    string `json:"notes,omitempty" example:"payout batch 12"`
}

type AdRequestDTO struct {
	Title           string  `json:"title" example:"Summer sale banner"`
	RewardAmount    float64 `json:"reward_amount" example:"101.75"`
	DurationSeconds int     `json:"duration_seconds" example:"30"`
	TargetURL       string  `json:"target_url" example:"https://example.com/landing"`
	Active          bool    `json:"active" example:"true"`
}

type AdminWithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	AccountID   int        `json:"account_id" example:"7"`
	Amount      float64    `json:"amount" example:"500"`
	Status      string     `json:"status" example:"pending"`
	CardNumber  string     `json:"card_number" example:"2377225624"`
	BankName    string     `json:"bank_name" example:"First National"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	ProcessedBy *int       `json:"processed_by,omitempty" example:"2"`
}
