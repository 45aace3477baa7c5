package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/brandgen/internal/adapters/http/dto"
	"github.com/jsamuelsen/brandgen/internal/adapters/http/middleware"
	"github.com/jsamuelsen/brandgen/internal/app"
)

// svgContentType is the media type of rendered logos.
const svgContentType = "image/svg+xml; charset=utf-8"

// BrandHandler serves the generation and option endpoints.
type BrandHandler struct {
	service *app.BrandService
}

// NewBrandHandler creates a brand handler.
func NewBrandHandler(service *app.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// Generate handles POST /api/v1/brands and returns three results.
func (h *BrandHandler) Generate(c *gin.Context) {
	var req dto.BrandRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	annotate(c)

	results, err := h.service.Generate(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGenerateResponse(results))
}

// Refresh handles POST /api/v1/brands/refresh and returns one result.
func (h *BrandHandler) Refresh(c *gin.Context) {
	var req dto.BrandRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	annotate(c)

	result, err := h.service.Refresh(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// Logo handles GET /api/v1/brands/logo.svg and renders a logo for a name the
// client already has. The drawn sub-variant is reported in X-Logo-Variant.
func (h *BrandHandler) Logo(c *gin.Context) {
	var q dto.LogoQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	annotate(c)

	mark, err := h.service.LogoForName(c.Request.Context(), q.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("X-Logo-Variant", mark.Variant)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, svgContentType, []byte(mark.SVG))
}

// Options handles GET /api/v1/options.
func (h *BrandHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewOptionsResponse(h.service.Options(c.Request.Context())))
}

// OptionValues handles GET /api/v1/options/:kind.
func (h *BrandHandler) OptionValues(c *gin.Context) {
	kind := c.Param("kind")

	values, err := h.service.OptionValues(c.Request.Context(), kind)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OptionValuesResponse{Kind: kind, Values: values})
}

// RegisterBrandRoutes registers the option and brand routes on rg.
func (h *BrandHandler) RegisterBrandRoutes(rg *gin.RouterGroup) {
	options := rg.Group("/options")
	options.GET("", h.Options)
	options.GET("/:kind", h.OptionValues)

	brands := rg.Group("/brands")
	brands.POST("", h.Generate)
	brands.POST("/refresh", h.Refresh)
	brands.GET("/logo.svg", h.Logo)
}

// annotate tags the request span with the request and correlation IDs so a
// generation can be found from either.
func annotate(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		return
	}

	ctx := c.Request.Context()
	span.SetAttributes(
		attribute.String("brandgen.request_id", middleware.RequestIDFromContext(ctx)),
		attribute.String("brandgen.correlation_id", middleware.CorrelationIDFromContext(ctx)),
	)
}
