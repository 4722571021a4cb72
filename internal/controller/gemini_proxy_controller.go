package controller

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/rs/zerolog/log"
)

const geminiAPIBase = "https://generativelanguage.googleapis.com"

// GeminiProxyController forwards raw Generative Language API calls for
// clients that cannot hold the API key themselves. The key arrives per
// request in the x-goog-api-key header; nothing is stored server-side.
type GeminiProxyController struct {
	httpClient *http.Client
	baseURL    string
}

func NewGeminiProxyController() *GeminiProxyController {
	return &GeminiProxyController{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    geminiAPIBase,
	}
}

// Proxy godoc
// @Summary Forward a request to the Generative Language API
// @Description Forwards the method and JSON body to the upstream path and returns the upstream status and body unchanged.
// @Tags Gemini
// @Accept json
// @Produce json
// @Param path path string true "Upstream API path, e.g. /v1beta/models/gemini-1.5-flash:generateContent"
// @Param x-goog-api-key header string true "API key forwarded upstream"
// @Success 200 {object} map[string]any "Upstream response"
// @Failure 400 {object} dto.ErrorResponse "Missing path or API key"
// @Failure 502 {object} dto.ErrorResponse "Upstream unreachable"
// @Router /gemini/proxy/{path} [post]
func (c *GeminiProxyController) Proxy(ctx *gin.Context) {
	path := ctx.Param("path")
	if path == "" || path == "/" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "upstream API path is required"})
		return
	}
	apiKey := ctx.GetHeader("x-goog-api-key")
	if apiKey == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "x-goog-api-key header is required"})
		return
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx.Request.Context(), ctx.Request.Method, c.baseURL+path, ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to build upstream request"})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Gemini proxy upstream request failed")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "upstream request failed"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "failed to read upstream response"})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	ctx.Data(resp.StatusCode, contentType, body)
}
