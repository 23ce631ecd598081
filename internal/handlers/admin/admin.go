package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/dto"
	adminservice "github.com/odelads/odelads/internal/service/adminservice"
	adservice "github.com/odelads/odelads/internal/service/adservice"
	withdrawalservice "github.com/odelads/odelads/internal/service/withdrawalservice"
	"github.com/odelads/odelads/pkg/auth"
	"github.com/odelads/odelads/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type AccountService interface {
	ListAccounts(ctx context.Context, principal domain.Principal) ([]domain.Account, error)
	SetAccountStatus(ctx context.Context, principal domain.Principal, accountID int, status string) (*domain.Account, error)
	Deposit(ctx context.Context, principal domain.Principal, accountID int, amount float64) (*domain.Account, error)
	AwardPoints(ctx context.Context, principal domain.Principal, accountID int, points int) error
	ResetCounters(ctx context.Context, principal domain.Principal, accountID int) error
}

type AdService interface {
	GetAllAds(ctx context.Context, principal domain.Principal) ([]domain.Ad, error)
	CreateAd(ctx context.Context, principal domain.Principal, ad *domain.Ad) (*domain.Ad, error)
	UpdateAd(ctx context.Context, principal domain.Principal, ad *domain.Ad) (*domain.Ad, error)
	DeleteAd(ctx context.Context, principal domain.Principal, adID int) error
}

type WithdrawalService interface {
	GetWithdrawalsByStatus(ctx context.Context, principal domain.Principal, status string) ([]domain.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, principal domain.Principal, withdrawalID int, decision, notes string) (*domain.Withdrawal, error)
}

type AdminHandler struct {
	accountService    AccountService
	adService         AdService
	withdrawalService WithdrawalService
}

func New(accountService AccountService, adService AdService, withdrawalService WithdrawalService) *AdminHandler {
	return &AdminHandler{
		accountService:    accountService,
		adService:         adService,
		withdrawalService: withdrawalService,
	}
}

func principalFromContext(ctx context.Context) domain.Principal {
	userID, _ := ctx.Value(auth.UserIDKey).(int)
	isAdmin, _ := ctx.Value(auth.IsAdminKey).(bool)
	return domain.Principal{ID: userID, IsAdmin: isAdmin}
}

func urlParamInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// ListAccounts godoc
//
//	@Summary		List accounts
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts [get]
func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context(), principalFromContext(r.Context()))
	if err != nil {
		respondAdminError(w, err)
		return
	}

	response := make([]dto.AccountResponseDTO, len(accounts))
	for i, a := range accounts {
		response[i] = dto.AccountResponseDTO{
			ID:                a.ID,
			Login:             a.Login,
			Status:            a.Status,
			Balance:           a.Balance,
			Withdrawn:         a.WithdrawnTotal,
			TotalAdsCompleted: a.TotalAdsCompleted,
			Points:            a.Points,
			IsAdmin:           a.IsAdmin,
			CreatedAt:         a.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetAccountStatus godoc
//
//	@Summary		Change account status
//	@Description	Permitted transitions: pending to active, active to frozen, frozen to active.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.SetStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.AccountResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		403			{object}	utils.Response	"Admin access required"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		409			{object}	utils.Response	"Transition not permitted"
//	@Router			/api/admin/accounts/{accountID}/status [patch]
func (h *AdminHandler) SetAccountStatus(w http.ResponseWriter, r *http.Request) {
	accountID, err := urlParamInt(r, "accountID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.SetStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountService.SetAccountStatus(r.Context(), principalFromContext(r.Context()), accountID, req.Status)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ID:                account.ID,
		Login:             account.Login,
		Status:            account.Status,
		Balance:           account.Balance,
		Withdrawn:         account.WithdrawnTotal,
		TotalAdsCompleted: account.TotalAdsCompleted,
		Points:            account.Points,
		IsAdmin:           account.IsAdmin,
		CreatedAt:         account.CreatedAt,
	})
}

// Deposit godoc
//
//	@Summary		Manual deposit
//	@Description	Credit the account balance manually. A deposit row is appended to the transaction trail.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.DepositRequestDTO	true	"Deposit amount"
//	@Success		200			{object}	dto.AccountResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid amount"
//	@Failure		403			{object}	utils.Response	"Admin access required"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Router			/api/admin/accounts/{accountID}/deposit [post]
func (h *AdminHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	accountID, err := urlParamInt(r, "accountID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountService.Deposit(r.Context(), principalFromContext(r.Context()), accountID, req.Amount)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ID:        account.ID,
		Login:     account.Login,
		Status:    account.Status,
		Balance:   account.Balance,
		Withdrawn: account.WithdrawnTotal,
		CreatedAt: account.CreatedAt,
	})
}

// AwardPoints godoc
//
//	@Summary		Award points
//	@Description	Award points to the account, clamped at 100 per operation.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Param			accountID	path	int							true	"Account ID"
//	@Param			request		body	dto.AwardPointsRequestDTO	true	"Points"
//	@Success		200
//	@Failure		400	{object}	utils.Response	"Invalid points"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Router			/api/admin/accounts/{accountID}/points [post]
func (h *AdminHandler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	accountID, err := urlParamInt(r, "accountID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.AwardPointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.accountService.AwardPoints(r.Context(), principalFromContext(r.Context()), accountID, req.Points); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "points awarded"})
}

// ResetCounters godoc
//
//	@Summary		Reset ad counters
//	@Description	Zero the ads-completed counter and points. Financial balances are untouched.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			accountID	path	int	true	"Account ID"
//	@Success		200
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Router			/api/admin/accounts/{accountID}/reset [post]
func (h *AdminHandler) ResetCounters(w http.ResponseWriter, r *http.Request) {
	accountID, err := urlParamInt(r, "accountID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	if err := h.accountService.ResetCounters(r.Context(), principalFromContext(r.Context()), accountID); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "counters reset"})
}

// ListAds godoc
//
//	@Summary	List all ads
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AdResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin access required"
//	@Router		/api/admin/ads [get]
func (h *AdminHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.adService.GetAllAds(r.Context(), principalFromContext(r.Context()))
	if err != nil {
		respondAdminError(w, err)
		return
	}

	response := make([]dto.AdResponseDTO, len(ads))
	for i, ad := range ads {
		response[i] = toAdDTO(&ad)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateAd godoc
//
//	@Summary	Create an ad
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AdRequestDTO	true	"Ad definition"
//	@Success	200		{object}	dto.AdResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid ad definition"
//	@Failure	403		{object}	utils.Response	"Admin access required"
//	@Router		/api/admin/ads [post]
func (h *AdminHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req dto.AdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ad := &domain.Ad{
		Title:           req.Title,
		RewardAmount:    req.RewardAmount,
		DurationSeconds: req.DurationSeconds,
		TargetURL:       req.TargetURL,
		Active:          req.Active,
	}
	created, err := h.adService.CreateAd(r.Context(), principalFromContext(r.Context()), ad)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAdDTO(created))
}

// UpdateAd godoc
//
//	@Summary	Update an ad
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		adID	path		int					true	"Ad ID"
//	@Param		request	body		dto.AdRequestDTO	true	"Ad definition"
//	@Success	200		{object}	dto.AdResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid ad definition"
//	@Failure	403		{object}	utils.Response	"Admin access required"
//	@Failure	404		{object}	utils.Response	"Ad not found"
//	@Router		/api/admin/ads/{adID} [put]
func (h *AdminHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	adID, err := urlParamInt(r, "adID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	var req dto.AdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ad := &domain.Ad{
		ID:              adID,
		Title:           req.Title,
		RewardAmount:    req.RewardAmount,
		DurationSeconds: req.DurationSeconds,
		TargetURL:       req.TargetURL,
		Active:          req.Active,
	}
	updated, err := h.adService.UpdateAd(r.Context(), principalFromContext(r.Context()), ad)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAdDTO(updated))
}

// DeleteAd godoc
//
//	@Summary	Delete an ad
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		adID	path	int	true	"Ad ID"
//	@Success	200
//	@Failure	403	{object}	utils.Response	"Admin access required"
//	@Failure	404	{object}	utils.Response	"Ad not found"
//	@Router		/api/admin/ads/{adID} [delete]
func (h *AdminHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	adID, err := urlParamInt(r, "adID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	if err := h.adService.DeleteAd(r.Context(), principalFromContext(r.Context()), adID); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ad deleted"})
}

// ListWithdrawals godoc
//
//	@Summary	List withdrawals by status
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Withdrawal status"	default(pending)
//	@Success	200		{array}		dto.AdminWithdrawalResponseDTO
//	@Failure	403		{object}	utils.Response	"Admin access required"
//	@Router		/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.PendingWithdrawalStatus
	}

	withdrawals, err := h.withdrawalService.GetWithdrawalsByStatus(r.Context(), principalFromContext(r.Context()), status)
	if err != nil {
		respondAdminError(w, err)
		return
	}

	response := make([]dto.AdminWithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toAdminWithdrawalDTO(&wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveWithdrawal godoc
//
//	@Summary		Resolve a pending withdrawal
//	@Description	Approve or reject a pending withdrawal. Terminal states are final: a second resolution fails with a conflict.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			withdrawalID	path		int								true	"Withdrawal ID"
//	@Param			request			body		dto.ResolveWithdrawalRequestDTO	true	"Decision"
//	@Success		200				{object}	dto.AdminWithdrawalResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid decision"
//	@Failure		403				{object}	utils.Response	"Admin access required"
//	@Failure		404				{object}	utils.Response	"Withdrawal not found"
//	@Failure		409				{object}	utils.Response	"Already resolved"
//	@Router			/api/admin/withdrawals/{withdrawalID}/resolve [post]
func (h *AdminHandler) ResolveWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := urlParamInt(r, "withdrawalID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	var req dto.ResolveWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolved, err := h.withdrawalService.ResolveWithdrawal(r.Context(), principalFromContext(r.Context()), withdrawalID, req.Decision, req.Notes)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAdminWithdrawalDTO(resolved))
}

func respondAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminservice.ErrNotAdmin),
		errors.Is(err, adservice.ErrNotAdmin),
		errors.Is(err, withdrawalservice.ErrNotAdmin):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, adminservice.ErrAccountNotFound),
		errors.Is(err, adservice.ErrAdNotFound),
		errors.Is(err, withdrawalservice.ErrWithdrawalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, adminservice.ErrInvalidTransition),
		errors.Is(err, withdrawalservice.ErrAlreadyResolved):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, adminservice.ErrInvalidAmount),
		errors.Is(err, adservice.ErrInvalidReward),
		errors.Is(err, adservice.ErrMissingTargetURL),
		errors.Is(err, withdrawalservice.ErrInvalidDecision):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toAdDTO(ad *domain.Ad) dto.AdResponseDTO {
	return dto.AdResponseDTO{
		ID:              ad.ID,
		Title:           ad.Title,
		RewardAmount:    ad.RewardAmount,
		DurationSeconds: ad.DurationSeconds,
		TargetURL:       ad.TargetURL,
		Active:          ad.Active,
	}
}

func toAdminWithdrawalDTO(wd *domain.Withdrawal) dto.AdminWithdrawalResponseDTO {
	return dto.AdminWithdrawalResponseDTO{
		ID:          wd.ID,
		AccountID:   wd.AccountID,
		Amount:      wd.Amount,
		Status:      wd.Status,
		CardNumber:  wd.CardNumber,
		BankName:    wd.BankName,
		Notes:       wd.Notes,
		RequestedAt: wd.RequestedAt,
		ProcessedAt: wd.ProcessedAt,
		ProcessedBy: wd.ProcessedBy,
	}
}
