package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/dto"
	withdrawalservice "github.com/odelads/odelads/internal/service/withdrawalservice"
	"github.com/odelads/odelads/pkg/auth"
	"github.com/odelads/odelads/pkg/utils"
	"github.com/odelads/odelads/pkg/validate"
)

//go:generate mockgen -source=withdrawals.go -destination=withdrawals_mock.go -package=withdrawals

type Service interface {
	GetAccount(ctx context.Context, accountID int) (*domain.Account, error)
	RequestWithdrawal(ctx context.Context, accountID int, amount float64, cardNumber, bankName string) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, accountID int) ([]domain.Withdrawal, error)
}

type TransactionService interface {
	GetTransactions(ctx context.Context, accountID int) ([]domain.Transaction, error)
}

type WithdrawalsHandler struct {
	withdrawalService  Service
	transactionService TransactionService
}

func New(withdrawalService Service, transactionService TransactionService) *WithdrawalsHandler {
	return &WithdrawalsHandler{
		withdrawalService:  withdrawalService,
		transactionService: transactionService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current account balance
//	@Description	Retrieve the current balance, withdrawn total, ad counters and status for the authenticated account.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *WithdrawalsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	account, err := h.withdrawalService.GetAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, withdrawalservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:           account.Balance,
		Withdrawn:         account.WithdrawnTotal,
		TotalAdsCompleted: account.TotalAdsCompleted,
		Points:            account.Points,
		Status:            account.Status,
	})
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Reserve funds from the account balance and create a pending withdrawal for admin review.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Account is not active"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *WithdrawalsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok := validate.IsLuhn(req.CardNumber)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	withdrawal, err := h.withdrawalService.RequestWithdrawal(r.Context(), userID, req.Amount, req.CardNumber, req.BankName)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrAccountNotActive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Get withdrawal history for the authenticated account sorted by request date
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response				"Withdrawals not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalsHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toWithdrawalDTO(&wd)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary		Get transaction trail
//	@Description	Get the append-only earning trail for the authenticated account
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204	{object}	utils.Response				"Transactions not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WithdrawalsHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.transactionService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:           t.ID,
			AdID:         t.AdID,
			Type:         t.Type,
			EarnedAmount: t.EarnedAmount,
			CreatedAt:    t.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toWithdrawalDTO(wd *domain.Withdrawal) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:          wd.ID,
		Amount:      wd.Amount,
		Status:      wd.Status,
		CardNumber:  wd.CardNumber,
		BankName:    wd.BankName,
		Notes:       wd.Notes,
		RequestedAt: wd.RequestedAt,
		ProcessedAt: wd.ProcessedAt,
	}
}
