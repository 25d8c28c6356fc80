package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ncastrod/taskcash/internal/metrics"
	"github.com/ncastrod/taskcash/internal/middleware"
	"github.com/ncastrod/taskcash/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	userService     service.UserService
	taskService     service.TaskService
	balanceService  service.BalanceService
	referralService service.ReferralService
	secretKey       string
}

func NewHandler(
	userService service.UserService,
	taskService service.TaskService,
	balanceService service.BalanceService,
	referralService service.ReferralService,
	secretKey string,
) *Handler {
	return &Handler{
		userService:     userService,
		taskService:     taskService,
		balanceService:  balanceService,
		referralService: referralService,
		secretKey:       secretKey,
	}
}

func NewRouter(handler *Handler, secretKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Handle("/metrics", metrics.Handler())

	limiter := middleware.NewUserRateLimiter(rate.Limit(10), 20)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Get("/tasks", handler.GetTasks)
			r.Post("/tasks/{taskID}/complete", handler.CompleteTask)
			r.Get("/tasks/completed", handler.GetCompletions)

			r.Get("/balance", handler.GetBalance)
			r.Get("/transactions", handler.GetTransactions)

			r.Get("/referrals", handler.GetReferrals)

			r.Get("/withdrawals/fee", handler.GetWithdrawalFee)
			r.Post("/withdrawals", handler.RequestWithdrawal)
			r.Get("/withdrawals", handler.GetWithdrawals)
		})
	})

	return r
}
