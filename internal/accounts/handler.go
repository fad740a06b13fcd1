package accounts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=accounts_test

type accountsService interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (_ *User, err error)
	Authenticate(ctx context.Context, req LoginRequest) (_ *LoginResponse, err error)
	Logout(ctx context.Context, token string) (err error)
	Me(ctx context.Context, userID string) (_ *User, err error)
}

type Handler struct {
	service accountsService
}

func NewHandler(service accountsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	// rate limit account creation and login to prevent abuse
	limited := func(name string, hf http.HandlerFunc) http.Handler {
		return middleware.RateLimit(rateLimiter, name, allowedPerMin, metricsManager)(hf)
	}

	r.Handle("/accounts", limited("accounts", h.HandleCreateAccount)).Methods("POST", "OPTIONS").Name("create-account")
	r.HandleFunc("/accounts/me", h.HandleMe).Methods("GET", "OPTIONS").Name("me")
	r.Handle("/sessions", limited("sessions", h.HandleLogin)).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/sessions", h.HandleLogout).Methods("DELETE", "OPTIONS").Name("logout")
}

func (h *Handler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.create")
	defer span.End()

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create account, unmarshal json params: %s", err)
		apperr.WriteHTTP(w, apperr.NewInvalidInput("invalid request body"))
		return
	}

	user, err := h.service.CreateAccount(ctx, req)
	if err != nil {
		apperr.Handle(w, "create account", err)
		return
	}

	pkg.WriteJSON(w, user.Response(), http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		apperr.WriteHTTP(w, apperr.NewInvalidInput("invalid request body"))
		return
	}

	resp, err := h.service.Authenticate(ctx, req)
	if err != nil {
		apperr.Handle(w, "authenticate", err)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.logout")
	defer span.End()

	if err := h.service.Logout(ctx, middleware.BearerToken(r)); err != nil {
		apperr.Handle(w, "logout", err)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "logged out"}, http.StatusOK)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.me")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		apperr.WriteHTTP(w, apperr.NewUnauthorized("missing session"))
		return
	}

	user, err := h.service.Me(ctx, identity.UserID)
	if err != nil {
		apperr.Handle(w, "get account", err)
		return
	}

	pkg.WriteJSON(w, user.Response(), http.StatusOK)
}
