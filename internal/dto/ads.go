package dto

type AdResponseDTO struct {
	ID              int     `json:"id" example:"1"`
	Title           string  `json:"title" example:"Summer sale banner"`
	RewardAmount    float64 `json:"reward_amount" example:"101.75"`
	DurationSeconds int     `json:"duration_seconds" example:"30"`
	TargetURL       string  `json:"target_url" example:"https://example.com/landing"`
	Active          bool    `json:"active" example:"true"`
}

type ClickRequestDTO struct {
	ClickToken string `json:"click_token,omitempty" example:"9f2b6c0e-77d4-4b2a-9d1a-3f8e2a1c5b40"`
}

type ClickResponseDTO struct {
	Balance           float64 `json:"balance" example:"101.75"`
	EarnedAmount      float64 `json:"earned_amount" example:"101.75"`
	TotalAdsCompleted int     `json:"total_ads_completed" example:"1"`
}
