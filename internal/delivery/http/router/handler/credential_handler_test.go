package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	mockUC "vault/internal/mocks/usecase"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCredentialHandler(t *testing.T) (*CredentialHandler, *mockUC.MockCredentialUsecase) {
	uc := mockUC.NewMockCredentialUsecase(t)
	h := NewCredentialHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc
}

// authedContext builds an echo.Context the way the authentication middleware
// leaves it: with the resolved account stored under the current-user key.
func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, user *entity.User) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("currentUser", user)

	return c
}

func testCredential(ownerID uuid.UUID, title string) *entity.Credential {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Credential{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     title,
		Username:  "alice",
		Password:  "hunter2",
		URL:       "https://github.com/login",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCredentialHandler_List(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}

	first := testCredential(user.ID, "GitHub")
	second := testCredential(user.ID, "Bank")
	uc.EXPECT().List(mock.Anything, user.ID).Return([]*entity.Credential{first, second}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.List)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"credentials":[`)
	assert.Contains(t, body, `"title":"GitHub"`)
	assert.Contains(t, body, `"title":"Bank"`)
	assert.Contains(t, body, `"password":"hunter2"`)
}

func TestCredentialHandler_List_EmptySerializesAsArray(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	uc.EXPECT().List(mock.Anything, user.ID).Return([]*entity.Credential{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.List)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"credentials":[]}`, rec.Body.String())
}

func TestCredentialHandler_Get(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	credential := testCredential(user.ID, "GitHub")
	uc.EXPECT().Get(mock.Anything, user.ID, credential.ID).Return(credential, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials/"+credential.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues(credential.ID.String())

	render(t, c, h.Get)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"credential":{`)
	assert.Contains(t, body, `"id":"`+credential.ID.String()+`"`)
	assert.Contains(t, body, `"url":"https://github.com/login"`)
}

func TestCredentialHandler_Get_MalformedID(t *testing.T) {
	e := newTestEcho()
	h, _ := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	// No usecase call: an unparseable ID is indistinguishable from a missing
	// record on the wire.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials/42", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues("42")

	render(t, c, h.Get)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Credential not found"}`, rec.Body.String())
}

func TestCredentialHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}
	otherID := uuid.New()

	uc.EXPECT().Get(mock.Anything, user.ID, otherID).Return(nil, domainerrors.ErrCredentialNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials/"+otherID.String(), nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues(otherID.String())

	render(t, c, h.Get)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Credential not found"}`, rec.Body.String())
}

func TestCredentialHandler_Get_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	h, _ := newCredentialHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	render(t, c, h.Get)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestCredentialHandler_Create(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	input := usecase.CredentialInput{
		Title:    "GitHub",
		Username: "alice",
		Password: "hunter2",
		URL:      "https://github.com/login",
	}
	created := testCredential(user.ID, "GitHub")
	uc.EXPECT().Create(mock.Anything, user.ID, input).Return(created, nil)

	req := jsonRequest(http.MethodPost, "/api/v1/credentials",
		`{"title":"GitHub","username":"alice","password":"hunter2","url":"https://github.com/login"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.Create)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+created.ID.String()+`"`)
}

func TestCredentialHandler_Create_RequiresTitle(t *testing.T) {
	e := newTestEcho()
	h, _ := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	req := jsonRequest(http.MethodPost, "/api/v1/credentials",
		`{"username":"alice","password":"hunter2"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.Create)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Validation failed"}`, rec.Body.String())
}

func TestCredentialHandler_Update(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	updated := testCredential(user.ID, "GitHub work")
	input := usecase.CredentialInput{Title: "GitHub work", Username: "alice", Password: "hunter3", URL: ""}
	uc.EXPECT().Update(mock.Anything, user.ID, updated.ID, input).Return(updated, nil)

	req := jsonRequest(http.MethodPut, "/api/v1/credentials/"+updated.ID.String(),
		`{"title":"GitHub work","username":"alice","password":"hunter3"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues(updated.ID.String())

	render(t, c, h.Update)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"GitHub work"`)
}

func TestCredentialHandler_Update_NotOwned(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}
	foreignID := uuid.New()

	uc.EXPECT().
		Update(mock.Anything, user.ID, foreignID, mock.Anything).
		Return(nil, domainerrors.ErrCredentialNotFound)

	req := jsonRequest(http.MethodPut, "/api/v1/credentials/"+foreignID.String(),
		`{"title":"Hijack"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues(foreignID.String())

	render(t, c, h.Update)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Credential not found"}`, rec.Body.String())
}

func TestCredentialHandler_Delete(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}
	id := uuid.New()

	uc.EXPECT().Delete(mock.Anything, user.ID, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/credentials/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	render(t, c, h.Delete)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Credential deleted"}`, rec.Body.String())
}

func TestCredentialHandler_Search(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	match := testCredential(user.ID, "GitHub")
	uc.EXPECT().Search(mock.Anything, user.ID, "git").Return([]*entity.Credential{match}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credentials/search?q=git", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.Search)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"GitHub"`)
}

func TestCredentialHandler_ForURL(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	match := testCredential(user.ID, "GitHub")
	uc.EXPECT().
		MatchURL(mock.Anything, user.ID, "https://github.com/login").
		Return([]*entity.Credential{match}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/credentials/for_url?url=https%3A%2F%2Fgithub.com%2Flogin", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.ForURL)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"GitHub"`)
}

func TestCredentialHandler_ForURL_NoMatches(t *testing.T) {
	e := newTestEcho()
	h, uc := newCredentialHandler(t)
	user := &entity.User{ID: uuid.New()}

	uc.EXPECT().
		MatchURL(mock.Anything, user.ID, "https://unknown.example").
		Return([]*entity.Credential{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/credentials/for_url?url=https%3A%2F%2Funknown.example", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	render(t, c, h.ForURL)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"credentials":[]}`, rec.Body.String())
}
