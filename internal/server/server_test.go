package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/amberleaf/menuforge/internal/repositories"
	"github.com/amberleaf/menuforge/internal/speech"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	subs []*models.Submission
}

func (r *recordingNotifier) Announce(sub *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, sub)
	return nil
}

func (r *recordingNotifier) Close() error { return nil }

func serverMenus() []*models.Menu {
	return []*models.Menu{
		{
			Venue: models.VenueFood, Name: "Amber Leaf Kitchen", Tagline: "Fire and smoke",
			Categories: []models.MenuCategory{
				{ID: "starters", Name: "Starters", Items: []models.MenuItem{
					{ID: "f1", Name: "Silken Tofu Tempura Tacos Bao", Description: "Crisp Tofu bao", Price: 399,
						Dietary: []string{models.DietVeg}, IsAvailable: true},
					{ID: "f2", Name: "Mutton Rogan Josh", Description: "Kashmiri shank", Price: 649,
						Dietary: []string{models.DietNonVeg}, IsAvailable: true},
				}},
				{ID: "desserts", Name: "Desserts", Items: []models.MenuItem{
					{ID: "f3", Name: "Gulab Jamun", Description: "Saffron syrup", Price: 249,
						Dietary: []string{models.DietVeg}, IsAvailable: true},
				}},
			},
		},
	}
}

func newTestServer() (*Server, *repositories.MemorySubmissionRepository, *recordingNotifier) {
	gin.SetMode(gin.TestMode)
	repo := repositories.NewMemorySubmissionRepository()
	notifier := &recordingNotifier{}
	speaker := speech.NewSpeaker(func(_ context.Context, _ speech.Utterance) error { return nil })
	return New(serverMenus(), repo, notifier, speaker), repo, notifier
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListMenus(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodGet, "/api/v1/menus", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "food", summaries[0]["venue"])
	assert.Equal(t, float64(3), summaries[0]["items"])
}

func TestGetMenuUnknownVenue(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodGet, "/api/v1/menus/rooftop", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQueryItemsTextSearch(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodGet, "/api/v1/items?q=tofu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			Item struct {
				Name string `json:"name"`
			} `json:"item"`
		} `json:"items"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Silken Tofu Tempura Tacos Bao", resp.Items[0].Item.Name)
}

// An exhausted filter combination is a valid, empty 200 response with
// the applied filters echoed back, not an error.
func TestQueryItemsEmptyResult(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodGet, "/api/v1/items?q=nonexistent&category=Desserts&veg_only=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items          []interface{}          `json:"items"`
		Count          int                    `json:"count"`
		FiltersApplied map[string]interface{} `json:"filtersApplied"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "nonexistent", resp.FiltersApplied["query"])
	assert.Equal(t, true, resp.FiltersApplied["vegOnly"])
}

func TestGetCategoryHTML(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodGet, "/api/v1/menus/food/categories/Starters/html", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "category-title")
	assert.Contains(t, w.Body.String(), "Mutton Rogan Josh")
}

func TestCreateReservation(t *testing.T) {
	srv, repo, notifier := newTestServer()
	w := doRequest(srv.Router(), http.MethodPost, "/api/v1/forms/reservations", map[string]interface{}{
		"name":       "Asha Rao",
		"email":      "asha@example.com",
		"phone":      "+919812345678",
		"venue":      "food",
		"date":       "2026-09-04",
		"time":       "20:00",
		"party_size": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["id"])

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	saved, err := repo.GetByID(context.Background(), resp["id"])
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionReservation, saved.Kind)
	assert.Equal(t, "Asha Rao", saved.Name)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.subs, 1)
	assert.Equal(t, resp["id"], notifier.subs[0].ID)
}

func TestCreateReservationValidation(t *testing.T) {
	srv, repo, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodPost, "/api/v1/forms/reservations", map[string]interface{}{
		"name":  "No Email",
		"phone": "+919812345678",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreateFeedbackRatingBounds(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodPost, "/api/v1/forms/feedback", map[string]interface{}{
		"name":    "Asha Rao",
		"email":   "asha@example.com",
		"rating":  9,
		"message": "Too good to rate fairly",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBanquetEnquiry(t *testing.T) {
	srv, repo, _ := newTestServer()
	w := doRequest(srv.Router(), http.MethodPost, "/api/v1/forms/banquets", map[string]interface{}{
		"name":        "Vikram Shetty",
		"email":       "vikram@example.com",
		"phone":       "+919876501234",
		"event_type":  "wedding reception",
		"date":        "2026-11-21",
		"guest_count": 180,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	subs, err := repo.ListByKind(context.Background(), models.SubmissionBanquet, 10)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.EqualValues(t, 180, subs[0].Payload["guest_count"])
}

func TestSpeak(t *testing.T) {
	srv, _, _ := newTestServer()

	w := doRequest(srv.Router(), http.MethodPost, "/api/v1/speak", map[string]interface{}{"text": "Paneer Tikka"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = doRequest(srv.Router(), http.MethodPost, "/api/v1/speak", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
