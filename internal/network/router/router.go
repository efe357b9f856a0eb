package router

import (
	"github.com/denmor86/paytik/internal/client"
	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/network/handlers"
	"github.com/denmor86/paytik/internal/network/middleware"
	"github.com/denmor86/paytik/internal/services"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config    config.Config
	Identity  services.IdentityService
	Wallet    services.WalletService
	Credits   services.CreditService
	Savings   services.SavingsService
	Directory services.DirectoryService
}

func NewRouter(config config.Config, store storage.Storage, scoring client.ScoringService) *Router {
	return &Router{
		Config:    config,
		Identity:  services.NewIdentity(config, store.Users),
		Wallet:    services.NewWallet(store.Users, store.Transactions),
		Credits:   services.NewCredit(config.Credit, store.Credits, store.Users, scoring),
		Savings:   services.NewSavings(store.Users, store.Savings),
		Directory: services.NewDirectory(store.Users),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	// проверка токена для закрытых маршрутов
	authenticated := func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(jwtauth.Authenticator(ja))
	}
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandle(router.Identity))
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Get("/balance", handlers.GetUserBalanceHandler(router.Wallet))
				r.Post("/deposit", handlers.DepositHandler(router.Wallet))
				r.Post("/transfer", handlers.TransferHandler(router.Wallet))
				r.Get("/transactions", handlers.GetTransactionsHandler(router.Wallet))
				r.Post("/pin", handlers.SetPinHandler(router.Identity))
			})
		})
		r.Route("/credit", func(r chi.Router) {
			r.Post("/simulate", handlers.SimulateCreditHandler(router.Credits))
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Get("/requests", handlers.GetCreditsHandler(router.Credits))
				r.Post("/requests", handlers.SubmitCreditHandler(router.Credits))
				r.Get("/requests/{id}", handlers.GetCreditHandler(router.Credits))
				r.Post("/requests/{id}/repay", handlers.RepayCreditHandler(router.Credits))
			})
		})
		r.Group(func(r chi.Router) {
			authenticated(r)
			r.Get("/vaults", handlers.GetVaultsHandler(router.Savings))
			r.Post("/vaults", handlers.CreateVaultHandler(router.Savings))
			r.Post("/vaults/{id}/deposit", handlers.VaultDepositHandler(router.Savings))
			r.Post("/vaults/{id}/withdraw", handlers.VaultWithdrawHandler(router.Savings))

			r.Get("/tontines", handlers.GetTontinesHandler(router.Savings))
			r.Post("/tontines", handlers.CreateTontineHandler(router.Savings))
			r.Post("/tontines/{id}/contribute", handlers.ContributeTontineHandler(router.Savings))

			r.Get("/card", handlers.GetCardHandler(router.Savings))
			r.Post("/card", handlers.IssueCardHandler(router.Savings))
			r.Post("/card/recharge", handlers.RechargeCardHandler(router.Savings))
		})
		r.Route("/admin", func(r chi.Router) {
			authenticated(r)
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Get("/users", handlers.ListUsersHandler(router.Directory))
			r.Get("/users/{alias}", handlers.GetManagedUserHandler(router.Directory))
			r.Get("/credits", handlers.GetCreditsByStatusHandler(router.Credits))
			r.Post("/credits/{id}/approve", handlers.ApproveCreditHandler(router.Credits))
			r.Post("/credits/{id}/reject", handlers.RejectCreditHandler(router.Credits))
		})
	})
	return r
}
