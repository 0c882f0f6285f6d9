package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rmoura/agenda-api/internal/httpx"
	"github.com/rmoura/agenda-api/internal/models"
	"github.com/rmoura/agenda-api/internal/store"
)

// UserStore defines the interface for account persistence.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handler holds the registration and login HTTP handlers.
type Handler struct {
	users     UserStore
	jwtSecret []byte
}

func NewHandler(users UserStore, jwtSecret []byte) *Handler {
	return &Handler{users: users, jwtSecret: jwtSecret}
}

// Register creates a new account with a hashed password.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if req.Email == "" || req.Senha == "" || req.Telefone == "" || req.Nome == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Dados incompletos!")
		return
	}

	hash, err := HashPassword(req.Senha)
	if err != nil {
		log.Printf("hash password: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro ao salvar usuário.")
		return
	}

	id, err := h.users.Insert(r.Context(), &models.User{
		Email:    req.Email,
		Senha:    hash,
		Telefone: req.Telefone,
		Nome:     req.Nome,
	})
	if err != nil {
		log.Printf("insert user: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro ao salvar usuário.")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Usuário cadastrado com sucesso!",
		"id":      id,
	})
}

// Login verifies email+password and issues a bearer token. An unknown email
// and a wrong password answer with the exact same body and status so the
// caller cannot tell which part failed.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if req.Email == "" || req.Senha == "" {
		httpx.WriteError(w, http.StatusBadRequest, "E-mail e senha são obrigatórios!")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("find user: %v", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Erro ao autenticar.")
			return
		}
		httpx.WriteError(w, http.StatusUnauthorized, "E-mail ou senha inválidos!")
		return
	}
	if !CheckPassword(req.Senha, user.Senha) {
		httpx.WriteError(w, http.StatusUnauthorized, "E-mail ou senha inválidos!")
		return
	}

	token, err := GenerateToken(user.ID.Hex(), h.jwtSecret)
	if err != nil {
		log.Printf("generate token: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro ao autenticar.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login realizado com sucesso!",
		"token":   token,
		"usuario": models.Profile{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Nome:  user.Nome,
		},
	})
}
