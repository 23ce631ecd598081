package domain

import "time"

const (
	// PendingAccountStatus аккаунт создан, но ещё не активирован администратором;
	PendingAccountStatus string = "pending"
	// ActiveAccountStatus аккаунт активен и может зарабатывать;
	ActiveAccountStatus string = "active"
	// FrozenAccountStatus аккаунт заморожен администратором;
	FrozenAccountStatus string = "frozen"
)

const (
	// AdClickTransaction начисление за просмотр рекламы;
	AdClickTransaction string = "ad_click"
	// DepositTransaction ручное пополнение администратором;
	DepositTransaction string = "deposit"
)

const (
	// PendingWithdrawalStatus заявка создана и ждёт решения;
	PendingWithdrawalStatus string = "pending"
	// ApprovedWithdrawalStatus заявка одобрена, средства списаны;
	ApprovedWithdrawalStatus string = "approved"
	// RejectedWithdrawalStatus заявка отклонена, средства возвращены;
	RejectedWithdrawalStatus string = "rejected"
)

// Principal is the authenticated caller, passed explicitly into every
// operation that needs it instead of being read from ambient state.
type Principal struct {
	ID      int
	IsAdmin bool
}

type Account struct {
	ID                int       `db:"id"`
	Login             string    `db:"login"`
	PasswordHash      string    `db:"password_hash"`
	Status            string    `db:"status"`
	Balance           float64   `db:"balance"`
	WithdrawnTotal    float64   `db:"withdrawn_total"`
	TotalAdsCompleted int       `db:"total_ads_completed"`
	Points            int       `db:"points"`
	IsAdmin           bool      `db:"is_admin"`
	CreatedAt         time.Time `db:"created_at"`
}

type Ad struct {
	ID              int       `db:"id"`
	Title           string    `db:"title"`
	RewardAmount    float64   `db:"reward_amount"`
	DurationSeconds int       `db:"duration_seconds"`
	TargetURL       string    `db:"target_url"`
	Active          bool      `db:"active"`
	CreatedAt       time.Time `db:"created_at"`
}

// Transaction is append-only: one row per earning event, never mutated.
type Transaction struct {
	ID           int       `db:"id"`
	AccountID    int       `db:"account_id"`
	AdID         *int      `db:"ad_id"`
	Type         string    `db:"type"`
	EarnedAmount float64   `db:"earned_amount"`
	ClickToken   *string   `db:"click_token"`
	CreatedAt    time.Time `db:"created_at"`
}

type Withdrawal struct {
	ID           int        `db:"id"`
	AccountID    int        `db:"account_id"`
	Amount       float64    `db:"amount"`
	Status       string     `db:"status"`
	CardNumber   string     `db:"card_number"`
	BankName     string     `db:"bank_name"`
	Notes        string     `db:"notes"`
	RequestedAt  time.Time  `db:"requested_at"`
	ProcessedAt  *time.Time `db:"processed_at"`
	ProcessedBy  *int       `db:"processed_by"`
	PayoutSentAt *time.Time `db:"payout_sent_at"`
}
