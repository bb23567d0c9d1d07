package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/social-media-api/internal/domain"
	"github.com/msomdec/social-media-api/internal/service"
)

// AccountHandler handles registration and login.
type AccountHandler struct {
	accounts *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// HandleRegister creates an account.
// POST /register
// Request:  {"username":"...","password":"..."}
// Response: {"account_id":1,"username":"..."}
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req AccountDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	account, err := h.accounts.Register(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, toAccountDTO(account))
}

// HandleLogin checks credentials and returns the matching account.
// POST /login
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req AccountDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	account, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password.")
			return
		}
		writeServiceError(w, r, err, http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, toAccountDTO(account))
}
