package task

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmoura/agenda-api/internal/httpx"
	"github.com/rmoura/agenda-api/internal/models"
	"github.com/rmoura/agenda-api/internal/timefmt"
)

// Handler maps the task HTTP routes onto the service.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/tarefas.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	id, err := h.svc.Create(r.Context(), req)
	switch {
	case errors.Is(err, ErrMissingFields):
		httpx.WriteError(w, http.StatusBadRequest, "Todos os campos são obrigatórios!")
	case errors.Is(err, timefmt.ErrInvalidFormat):
		httpx.WriteError(w, http.StatusBadRequest, "Horário inválido! Use o formato DD/MM/YYYY HH:mm.")
	case err != nil:
		log.Printf("create task: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro ao adicionar tarefa.")
	default:
		httpx.WriteJSON(w, http.StatusCreated, map[string]string{
			"message": "Tarefa adicionada!",
			"id":      id,
		})
	}
}

// List handles GET /api/tarefas/{userId}.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "O ID do usuário é obrigatório!")
		return
	}

	views, err := h.svc.ListByOwner(r.Context(), userID)
	switch {
	case errors.Is(err, ErrNoTasks):
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{
			"message": "Nenhuma tarefa encontrada para este usuário.",
		})
	case err != nil:
		log.Printf("list tasks: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro ao buscar tarefas.")
	default:
		httpx.WriteJSON(w, http.StatusOK, views)
	}
}

// Update handles PUT /api/tarefas/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	err := h.svc.Update(r.Context(), id, req)
	switch {
	case errors.Is(err, ErrNoFieldsProvided):
		httpx.WriteError(w, http.StatusBadRequest, "Nenhum campo para atualizar foi fornecido!")
	case errors.Is(err, timefmt.ErrInvalidFormat):
		httpx.WriteError(w, http.StatusBadRequest, "Horário inválido! Use o formato DD/MM/YYYY HH:mm.")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Tarefa não encontrada!")
	case err != nil:
		log.Printf("update task: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro ao atualizar tarefa.")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Tarefa atualizada com sucesso!",
		})
	}
}

// Delete handles DELETE /api/tarefas/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.svc.Delete(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Tarefa não encontrada!")
	case err != nil:
		log.Printf("delete task: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro ao excluir tarefa.")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Tarefa excluída com sucesso!",
		})
	}
}
