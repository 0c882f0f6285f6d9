package task

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoura/agenda-api/internal/models"
)

func newTestRouter(st Store) chi.Router {
	h := NewHandler(NewService(st, nil))
	r := chi.NewRouter()
	r.Route("/api/tarefas", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{userId}", h.List)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateRoute(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeTaskStore())

	rec := do(t, r, http.MethodPost, "/api/tarefas", `{"userId":"u1","titulo":"Mercado"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/tarefas",
		`{"userId":"u1","titulo":"Mercado","descricao":"Compras da semana","horario":"20/07/2025 18:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Tarefa adicionada!", resp.Message)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateRoute_BadHorario(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeTaskStore())

	rec := do(t, r, http.MethodPost, "/api/tarefas",
		`{"userId":"u1","titulo":"Mercado","descricao":"x","horario":"07/20/2025 18:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRoute(t *testing.T) {
	t.Parallel()
	st := newFakeTaskStore()
	r := newTestRouter(st)

	// Empty owner answers 404, not an empty array.
	rec := do(t, r, http.MethodGet, "/api/tarefas/u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nenhuma tarefa encontrada")

	create := do(t, r, http.MethodPost, "/api/tarefas",
		`{"userId":"u1","titulo":"Mercado","descricao":"Compras","horario":"20/07/2025 18:00"}`)
	require.Equal(t, http.StatusCreated, create.Code)

	rec = do(t, r, http.MethodGet, "/api/tarefas/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []models.TaskView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "20/07/2025 18:00", views[0].Horario)
}

func TestUpdateRoute(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeTaskStore())

	rec := do(t, r, http.MethodPut, "/api/tarefas/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPut, "/api/tarefas/abc", `{"titulo":"Feira"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	create := do(t, r, http.MethodPost, "/api/tarefas",
		`{"userId":"u1","titulo":"Mercado","descricao":"Compras","horario":"20/07/2025 18:00"}`)
	require.Equal(t, http.StatusCreated, create.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &created))

	rec = do(t, r, http.MethodPut, "/api/tarefas/"+created.ID, `{"titulo":"Feira"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteRoute(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeTaskStore())

	create := do(t, r, http.MethodPost, "/api/tarefas",
		`{"userId":"u1","titulo":"Mercado","descricao":"Compras","horario":"20/07/2025 18:00"}`)
	require.Equal(t, http.StatusCreated, create.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &created))

	rec := do(t, r, http.MethodDelete, "/api/tarefas/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodDelete, "/api/tarefas/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
