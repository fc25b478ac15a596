package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sib-chatbot-be/internal/dto"
	"sib-chatbot-be/internal/pkg/serverutils"
)

func newServicesApp() *fiber.App {
	app := fiber.New()
	NewServicesController().RegisterRoutes(app.Group("/api"))
	return app
}

func TestServicesCatalog(t *testing.T) {
	app := newServicesApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/services/v1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body serverutils.Response[dto.ServicesResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, len(body.Data.Services), body.Data.Total)
	assert.NotEmpty(t, body.Data.Services)

	seen := map[int]bool{}
	for _, svc := range body.Data.Services {
		assert.False(t, seen[svc.Id], "duplicate service id %d", svc.Id)
		seen[svc.Id] = true
		assert.NotEmpty(t, svc.Name)
		assert.NotEmpty(t, svc.Category)
	}
}

func TestServiceCategories(t *testing.T) {
	app := newServicesApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/services/v1/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body serverutils.Response[dto.ServiceCategoriesResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	ids := map[string]bool{}
	for _, cat := range body.Data.Categories {
		ids[cat.Id] = true
	}

	// Every catalog entry must point at a known category.
	for _, svc := range bankingServices {
		assert.True(t, ids[svc.Category], "service %q has unknown category %q", svc.Name, svc.Category)
	}
}
