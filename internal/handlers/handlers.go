package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/odelads/odelads/docs"
	adminhandlers "github.com/odelads/odelads/internal/handlers/admin"
	adshandlers "github.com/odelads/odelads/internal/handlers/ads"
	authhandlers "github.com/odelads/odelads/internal/handlers/auth"
	withdrawalhandlers "github.com/odelads/odelads/internal/handlers/withdrawals"
	"github.com/odelads/odelads/internal/service"
	"github.com/odelads/odelads/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AdsHandler interface {
	GetAds(w http.ResponseWriter, r *http.Request)
	Click(w http.ResponseWriter, r *http.Request)
}

type WithdrawalsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListAccounts(w http.ResponseWriter, r *http.Request)
	SetAccountStatus(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	AwardPoints(w http.ResponseWriter, r *http.Request)
	ResetCounters(w http.ResponseWriter, r *http.Request)
	ListAds(w http.ResponseWriter, r *http.Request)
	CreateAd(w http.ResponseWriter, r *http.Request)
	UpdateAd(w http.ResponseWriter, r *http.Request)
	DeleteAd(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ResolveWithdrawal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	AdsHandler         AdsHandler
	WithdrawalsHandler WithdrawalsHandler
	AdminHandler       AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		AdsHandler:         adshandlers.New(s.AdService, s.ClickService),
		WithdrawalsHandler: withdrawalhandlers.New(s.WithdrawalService, s.ClickService),
		AdminHandler:       adminhandlers.New(s.AdminService, s.AdService, s.WithdrawalService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/ads", func(r chi.Router) {
				r.Get("/", h.AdsHandler.GetAds)
				r.Post("/{adID}/click", h.AdsHandler.Click)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.WithdrawalsHandler.GetBalance)
				r.Post("/withdraw", h.WithdrawalsHandler.Withdraw)
			})
			r.Get("/withdrawals", h.WithdrawalsHandler.GetWithdrawals)
			r.Get("/transactions", h.WithdrawalsHandler.GetTransactions)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListAccounts)
			r.Patch("/{accountID}/status", h.AdminHandler.SetAccountStatus)
			r.Post("/{accountID}/deposit", h.AdminHandler.Deposit)
			r.Post("/{accountID}/points", h.AdminHandler.AwardPoints)
			r.Post("/{accountID}/reset", h.AdminHandler.ResetCounters)
		})
		r.Route("/ads", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListAds)
			r.Post("/", h.AdminHandler.CreateAd)
			r.Put("/{adID}", h.AdminHandler.UpdateAd)
			r.Delete("/{adID}", h.AdminHandler.DeleteAd)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListWithdrawals)
			r.Post("/{withdrawalID}/resolve", h.AdminHandler.ResolveWithdrawal)
		})
	})

	return r
}
