package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"herbwise/internal/delivery/http/response"
	"herbwise/internal/infra/persistence/memory"
	"herbwise/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestValidateOfferEndpoint_ValidCode(t *testing.T) {
	h := NewOfferHandler(impl.NewOfferService(memory.NewOfferRepository()), discardLogger())
	e := echo.New()

	c, rec := postJSON(t, e, "/offers/validate", `{"code":"WELCOME25","order_total":40}`)
	require.NoError(t, h.ValidateOffer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "Offer applied successfully!", data["message"])
	assert.InDelta(t, 10.0, data["discount"].(float64), 1e-9)
}

func TestValidateOfferEndpoint_UnknownCode(t *testing.T) {
	h := NewOfferHandler(impl.NewOfferService(memory.NewOfferRepository()), discardLogger())
	e := echo.New()

	c, rec := postJSON(t, e, "/offers/validate", `{"code":"NOPE","order_total":40}`)
	require.NoError(t, h.ValidateOffer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["valid"])
	assert.Equal(t, "Invalid offer code", data["message"])
}

func TestGetPlantEndpoint(t *testing.T) {
	h := NewCatalogHandler(impl.NewCatalogService(memory.NewPlantRepository()), discardLogger())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/plants/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/plants/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.GetPlant(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Turmeric")
}
