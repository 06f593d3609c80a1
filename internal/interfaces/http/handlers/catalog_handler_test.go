package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogApp() *fiber.App {
	app := fiber.New()
	h := NewCatalogHandler()
	app.Get("/catalog/areas", h.GetAreas)
	app.Get("/catalog/questions", h.GetQuestions)
	return app
}

func TestGetAreas(t *testing.T) {
	app := newCatalogApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/areas", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 12, body.Total)
	require.Len(t, body.Data, 12)
	assert.Equal(t, "societario", body.Data[0].ID)
}

func TestGetQuestionsFilteredByArea(t *testing.T) {
	app := newCatalogApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/questions?area=financeiro", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			ID     string `json:"id"`
			AreaID string `json:"area_id"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 5, body.Total)
	for _, q := range body.Data {
		assert.Equal(t, "financeiro", q.AreaID)
	}
}

func TestGetQuestionsUnknownArea(t *testing.T) {
	app := newCatalogApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/questions?area=inexistente", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
