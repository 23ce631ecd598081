package ads

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/dto"
	clickservice "github.com/odelads/odelads/internal/service/clickservice"
	"github.com/odelads/odelads/pkg/auth"
	"github.com/odelads/odelads/pkg/utils"
)

//go:generate mockgen -source=ads.go -destination=ads_mock.go -package=ads

type AdService interface {
	GetActiveAds(ctx context.Context) ([]domain.Ad, error)
}

type ClickService interface {
	ProcessClick(ctx context.Context, accountID int, adID int, clickToken *string) (*clickservice.ClickResult, error)
}

type AdsHandler struct {
	adService    AdService
	clickService ClickService
}

func New(adService AdService, clickService ClickService) *AdsHandler {
	return &AdsHandler{
		adService:    adService,
		clickService: clickService,
	}
}

// GetAds godoc
//
//	@Summary		List active ads
//	@Description	List ads currently available for earning
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdResponseDTO	"Active ads"
//	@Success		204	{object}	utils.Response		"No active ads"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/ads [get]
func (h *AdsHandler) GetAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.adService.GetActiveAds(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(ads) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No active ads")
		return
	}

	response := make([]dto.AdResponseDTO, len(ads))
	for i, ad := range ads {
		response[i] = dto.AdResponseDTO{
			ID:              ad.ID,
			Title:           ad.Title,
			RewardAmount:    ad.RewardAmount,
			DurationSeconds: ad.DurationSeconds,
			TargetURL:       ad.TargetURL,
			Active:          ad.Active,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Click godoc
//
//	@Summary		Register an ad click
//	@Description	Credit the ad reward to the account and append a transaction record. An optional click token makes the call idempotent.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			adID	path		int					true	"Ad ID"
//	@Param			request	body		dto.ClickRequestDTO	false	"Click request payload"
//	@Success		200		{object}	dto.ClickResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid ad id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Account is not active"
//	@Failure		404		{object}	utils.Response	"Account or ad not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/ads/{adID}/click [post]
func (h *AdsHandler) Click(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	adID, err := strconv.Atoi(chi.URLParam(r, "adID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	// The body is optional; ContentLength is -1 for chunked requests, so
	// decode unconditionally and treat EOF as an empty body.
	var req dto.ClickRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var clickToken *string
	if req.ClickToken != "" {
		clickToken = &req.ClickToken
	}

	result, err := h.clickService.ProcessClick(r.Context(), userID, adID, clickToken)
	if err != nil {
		switch {
		case errors.Is(err, clickservice.ErrAccountNotFound), errors.Is(err, clickservice.ErrAdNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, clickservice.ErrAccountNotActive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ClickResponseDTO{
		Balance:           result.Balance,
		EarnedAmount:      result.EarnedAmount,
		TotalAdsCompleted: result.TotalAdsCompleted,
	})
}
