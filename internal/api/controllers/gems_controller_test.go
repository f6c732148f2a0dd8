package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgtourism/internal/models/db_models"
	"cgtourism/internal/services"
	"cgtourism/pkg/middleware"
)

type memGemRepo struct {
	gems       []db_models.Gem
	clock      time.Time
	failCreate bool
	failList   bool
}

func (r *memGemRepo) CreateGem(_ context.Context, gem *db_models.Gem) error {
	if r.failCreate {
		return assert.AnError
	}
	if gem.ID == uuid.Nil {
		gem.ID = uuid.New()
	}
	r.clock = r.clock.Add(time.Second)
	gem.CreatedAt = r.clock
	r.gems = append(r.gems, *gem)
	return nil
}

func (r *memGemRepo) ListGems(_ context.Context) ([]db_models.Gem, error) {
	if r.failList {
		return nil, assert.AnError
	}
	out := make([]db_models.Gem, 0, len(r.gems))
	for i := len(r.gems) - 1; i >= 0; i-- {
		out = append(out, r.gems[i])
	}
	return out, nil
}

func newGemsRouter(repo *memGemRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewGemsController(services.NewGemService(repo, nil))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	gems := r.Group("/api/gems")
	gems.Use(middleware.BodySizeLimit(1 << 20))
	gems.GET("", controller.ListGems)
	gems.POST("", controller.CreateGem)
	return r
}

type gemEnvelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func postGem(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/gems", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateGemReturns201(t *testing.T) {
	repo := &memGemRepo{}
	r := newGemsRouter(repo)

	w := postGem(t, r, `{"name":"Tirathgarh Falls","description":"A waterfall","imageUrl":"data:image/png;base64,AAAA","submittedBy":"Alex","tags":["nature"]}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var env gemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.TraceID)

	var gem db_models.Gem
	require.NoError(t, json.Unmarshal(env.Data, &gem))
	assert.NotEqual(t, uuid.Nil, gem.ID)
	assert.Equal(t, "Tirathgarh Falls", gem.Name)
	assert.Equal(t, []string{"nature"}, []string(gem.Tags))
}

func TestCreateGemMissingNameReturns400(t *testing.T) {
	repo := &memGemRepo{}
	r := newGemsRouter(repo)

	w := postGem(t, r, `{"name":"","description":"x","imageUrl":"y","submittedBy":"z","tags":[]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var env gemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "name")
	assert.Empty(t, repo.gems, "store unchanged on validation failure")
}

func TestCreateGemMalformedBodyReturns400(t *testing.T) {
	r := newGemsRouter(&memGemRepo{})

	w := postGem(t, r, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGemDuplicateNamesBothSucceed(t *testing.T) {
	repo := &memGemRepo{}
	r := newGemsRouter(repo)

	body := `{"name":"Kotumsar Cave","description":"An underground wonder","imageUrl":"u","submittedBy":"me","tags":[]}`

	first := postGem(t, r, body)
	second := postGem(t, r, body)
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)

	require.Len(t, repo.gems, 2)
	assert.NotEqual(t, repo.gems[0].ID, repo.gems[1].ID)
}

func TestCreateGemStoreFailureReturns500(t *testing.T) {
	r := newGemsRouter(&memGemRepo{failCreate: true})

	w := postGem(t, r, `{"name":"a","description":"b","imageUrl":"c","submittedBy":"d","tags":[]}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateGemOversizedBodyReturns413(t *testing.T) {
	r := newGemsRouter(&memGemRepo{})

	big := strings.Repeat("A", 2<<20)
	w := postGem(t, r, `{"name":"a","description":"b","imageUrl":"`+big+`","submittedBy":"d","tags":[]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestListGemsNewestFirst(t *testing.T) {
	repo := &memGemRepo{}
	r := newGemsRouter(repo)

	for _, name := range []string{"A", "B", "C"} {
		w := postGem(t, r, `{"name":"`+name+`","description":"d","imageUrl":"u","submittedBy":"s","tags":[]}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/gems", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var env gemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var gems []db_models.Gem
	require.NoError(t, json.Unmarshal(env.Data, &gems))
	require.Len(t, gems, 3)
	assert.Equal(t, "C", gems[0].Name)
	assert.Equal(t, "B", gems[1].Name)
	assert.Equal(t, "A", gems[2].Name)
}

func TestListGemsStoreFailureReturns500(t *testing.T) {
	r := newGemsRouter(&memGemRepo{failList: true})

	req := httptest.NewRequest(http.MethodGet, "/api/gems", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
