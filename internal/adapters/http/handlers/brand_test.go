package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/brandgen/internal/adapters/http/dto"
	"github.com/jsamuelsen/brandgen/internal/app"
	"github.com/jsamuelsen/brandgen/internal/catalog"
	"github.com/jsamuelsen/brandgen/internal/domain"
	"github.com/jsamuelsen/brandgen/internal/generator"
	"github.com/jsamuelsen/brandgen/internal/mocks"
)

const techBody = `{"industry":"tech","keywords":"flow, sync","style":"modern","logoStyle":"minimal","colorScheme":"blues"}`

// newBrandRouter wires the handler to a service backed by the embedded catalog.
func newBrandRouter(t *testing.T, seed uint64) *gin.Engine {
	t.Helper()

	c := catalog.Default()
	svc := app.NewBrandService(app.BrandServiceConfig{
		Generator: generator.New(c, generator.NewSource(seed)),
		Catalog:   c,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return routerFor(NewBrandHandler(svc))
}

// newMockedBrandRouter wires the handler to a service backed by mocks.
func newMockedBrandRouter(t *testing.T, gen *mocks.MockBrandGenerator, cat *mocks.MockOptionCatalog) *gin.Engine {
	t.Helper()

	svc := app.NewBrandService(app.BrandServiceConfig{
		Generator: gen,
		Catalog:   cat,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return routerFor(NewBrandHandler(svc))
}

func routerFor(h *BrandHandler) *gin.Engine {
	router := gin.New()
	h.RegisterBrandRoutes(router.Group("/api/v1"))

	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestBrandHandler_Generate(t *testing.T) {
	router := newBrandRouter(t, 42)

	w := serve(router, http.MethodPost, "/api/v1/brands", techBody)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, domain.ResultsPerRequest)

	for _, r := range resp.Results {
		assert.NotEmpty(t, r.Name)
		assert.Contains(t, r.Tagline, "tech")
		assert.True(t, strings.HasPrefix(r.Logo, "<svg "), "logo is an svg document")
		assert.Contains(t, []string{"circle", "square", "triangle", "hexagon", "diamond"}, r.LogoVariant)
	}
}

func TestBrandHandler_Generate_SameSeedSameResults(t *testing.T) {
	first := serve(newBrandRouter(t, 7), http.MethodPost, "/api/v1/brands", techBody)
	second := serve(newBrandRouter(t, 7), http.MethodPost, "/api/v1/brands", techBody)

	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestBrandHandler_Generate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    string
		wantDetails map[string]string
	}{
		{
			name:       "malformed json",
			body:       `{"industry":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:        "missing industry",
			body:        `{"style":"modern","logoStyle":"minimal","colorScheme":"blues"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidation,
			wantDetails: map[string]string{"industry": "this field is required"},
		},
		{
			name:        "too many keywords",
			body:        `{"industry":"tech","keywords":"` + strings.Repeat("k,", 21) + `","style":"modern","logoStyle":"minimal","colorScheme":"blues"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidation,
			wantDetails: map[string]string{"keywords": "must list at most 20 keywords"},
		},
		{
			name:        "unrecognized industry",
			body:        `{"industry":"mining","style":"modern","logoStyle":"minimal","colorScheme":"blues"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidation,
			wantDetails: map[string]string{"industry": "unrecognized value mining"},
		},
		{
			name:        "unrecognized color scheme",
			body:        `{"industry":"tech","style":"modern","logoStyle":"minimal","colorScheme":"neon"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidation,
			wantDetails: map[string]string{"colorScheme": "unrecognized value neon"},
		},
	}

	router := newBrandRouter(t, 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodPost, "/api/v1/brands", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)

			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, resp.Error.Details)
			}
		})
	}
}

func TestBrandHandler_Generate_EngineFailure(t *testing.T) {
	gen := mocks.NewMockBrandGenerator(t)
	cat := mocks.NewMockOptionCatalog(t)

	cat.EXPECT().Validate(mock.Anything).Return(nil)
	gen.EXPECT().Names(domain.Industry("tech"), "flow, sync", domain.NamingStyle("modern")).
		Return(nil, errors.New("dictionary unreadable"))

	w := serve(newMockedBrandRouter(t, gen, cat), http.MethodPost, "/api/v1/brands", techBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "dictionary unreadable")
}

func TestBrandHandler_Refresh(t *testing.T) {
	router := newBrandRouter(t, 3)

	w := serve(router, http.MethodPost, "/api/v1/brands/refresh", techBody)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Name)
	assert.NotEmpty(t, resp.Tagline)
	assert.True(t, strings.HasPrefix(resp.Logo, "<svg "))
	assert.NotEmpty(t, resp.LogoVariant)
}

func TestBrandHandler_Refresh_UnrecognizedStyle(t *testing.T) {
	router := newBrandRouter(t, 3)

	w := serve(router, http.MethodPost, "/api/v1/brands/refresh",
		`{"industry":"tech","style":"gothic","logoStyle":"minimal","colorScheme":"blues"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]string{"style": "unrecognized value gothic"}, decodeError(t, w).Error.Details)
}

func TestBrandHandler_Logo(t *testing.T) {
	router := newBrandRouter(t, 11)

	q := url.Values{}
	q.Set("name", "Nova<Labs>")
	q.Set("logoStyle", "lettermark")
	q.Set("colorScheme", "greens")

	w := serve(router, http.MethodGet, "/api/v1/brands/logo.svg?"+q.Encode(), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, svgContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, []string{"initial", "monogram", "wordmark", "typeface", "script"}, w.Header().Get("X-Logo-Variant"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<svg "))
	assert.NotContains(t, body, "<Labs>", "name is escaped")
}

func TestBrandHandler_Logo_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantField  string
	}{
		{"missing name", "logoStyle=minimal&colorScheme=blues", http.StatusBadRequest, "name"},
		{"blank name", "name=%20%20&logoStyle=minimal&colorScheme=blues", http.StatusBadRequest, "name"},
		{"unknown logo style", "name=Nova&logoStyle=baroque&colorScheme=blues", http.StatusBadRequest, "logoStyle"},
		{"unknown color scheme", "name=Nova&logoStyle=minimal&colorScheme=neon", http.StatusBadRequest, "colorScheme"},
	}

	router := newBrandRouter(t, 11)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/api/v1/brands/logo.svg?"+tt.query, "")

			assert.Equal(t, tt.wantStatus, w.Code)

			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
			assert.Contains(t, resp.Error.Details, tt.wantField)
		})
	}
}

func TestBrandHandler_Options(t *testing.T) {
	router := newBrandRouter(t, 1)

	w := serve(router, http.MethodGet, "/api/v1/options", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.OptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"modern", "quirky", "professional", "futuristic", "playful"}, resp.NamingStyles)
	assert.Equal(t, []string{"minimal", "abstract", "geometric", "mascot", "lettermark"}, resp.LogoStyles)
	assert.Len(t, resp.Industries, 8)
	assert.Len(t, resp.ColorSchemes, 7)
	assert.Equal(t, dto.PaletteResponse{
		Main:       "#1A237E",
		Secondary:  "#2196F3",
		Accent:     "#BBDEFB",
		Background: "#E3F2FD",
	}, resp.Palettes["blues"])
}

func TestBrandHandler_OptionValues(t *testing.T) {
	cat := mocks.NewMockOptionCatalog(t)
	cat.EXPECT().Options().Return(domain.Options{
		Industries:   []domain.Industry{"tech", "food"},
		ColorSchemes: []domain.ColorScheme{"blues"},
	})

	router := newMockedBrandRouter(t, mocks.NewMockBrandGenerator(t), cat)

	tests := []struct {
		name       string
		kind       string
		wantStatus int
		wantValues []string
	}{
		{"industries", app.OptionIndustries, http.StatusOK, []string{"tech", "food"}},
		{"color schemes", app.OptionColorSchemes, http.StatusOK, []string{"blues"}},
		{"empty kind", app.OptionLogoStyles, http.StatusOK, []string{}},
		{"unknown kind", "sizes", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/api/v1/options/"+tt.kind, "")

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, dto.ErrorCodeNotFound, decodeError(t, w).Error.Code)
				return
			}

			var resp dto.OptionValuesResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Equal(t, tt.wantValues, resp.Values)
		})
	}
}
