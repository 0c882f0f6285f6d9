package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rmoura/agenda-api/internal/models"
	"github.com/rmoura/agenda-api/internal/store"
)

type fakeUserStore struct {
	byEmail   map[string]*models.User
	insertErr error
	findErr   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	u.ID = primitive.NewObjectID()
	f.byEmail[u.Email] = u
	return u.ID.Hex(), nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

var testSecret = []byte("test-secret")

func doJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	h := NewHandler(newFakeUserStore(), testSecret)
	rec := doJSON(t, h.Register, `{"email":"a@b.com","senha":"pw123","telefone":"555"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dados incompletos")
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	h := NewHandler(users, testSecret)

	rec := doJSON(t, h.Register, `{"email":"a@b.com","senha":"pw123","telefone":"555","nome":"A"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)

	stored := users.byEmail["a@b.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw123", stored.Senha)
	assert.True(t, CheckPassword("pw123", stored.Senha))
}

func TestRegister_StoreError(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	users.insertErr = errors.New("mongo down")
	h := NewHandler(users, testSecret)

	rec := doJSON(t, h.Register, `{"email":"a@b.com","senha":"pw","telefone":"5","nome":"A"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "mongo down")
}

func TestLogin_NormalizesEmail(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	h := NewHandler(users, testSecret)

	rec := doJSON(t, h.Register, `{"email":"a@b.com","senha":"pw123","telefone":"555","nome":"A"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Mixed case and trailing space must still match.
	rec = doJSON(t, h.Login, `{"email":"A@B.com ","senha":"pw123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token   string         `json:"token"`
		Usuario models.Profile `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a@b.com", resp.Usuario.Email)
	assert.Equal(t, "A", resp.Usuario.Nome)

	sub, err := SubjectFromToken(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.Usuario.ID, sub)

	// Reduced profile only; no phone, no hash.
	assert.NotContains(t, rec.Body.String(), "telefone")
	assert.NotContains(t, rec.Body.String(), "senha")
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	h := NewHandler(newFakeUserStore(), testSecret)
	rec := doJSON(t, h.Login, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	h := NewHandler(users, testSecret)

	rec := doJSON(t, h.Register, `{"email":"a@b.com","senha":"pw123","telefone":"555","nome":"A"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	unknown := doJSON(t, h.Login, `{"email":"nobody@b.com","senha":"pw123"}`)
	wrongPw := doJSON(t, h.Login, `{"email":"a@b.com","senha":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String(),
		"unknown email and wrong password must be indistinguishable")
}
