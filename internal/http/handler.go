package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go.ngs.io/surf-api/internal/domain"
	"go.ngs.io/surf-api/internal/usecase"
)

// Handler handles HTTP requests for beaches and surf forecasts.
type Handler struct {
	registry   *usecase.Registry
	forecastUC *usecase.ForecastUseCase
	countries  []string
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(registry *usecase.Registry, forecastUC *usecase.ForecastUseCase, countries []string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		registry:   registry,
		forecastUC: forecastUC,
		countries:  countries,
		logger:     logger,
	}
}

// AddBeachRequest is the body of POST /playas/add.
type AddBeachRequest struct {
	ID      string   `json:"id" binding:"required"`
	Name    string   `json:"nombre" binding:"required"`
	Lat     *float64 `json:"lat" binding:"required"`
	Long    *float64 `json:"long" binding:"required"`
	Country string   `json:"pais" binding:"required"`
}

// BeachResponse is a registry entry as returned by GET /playas.
type BeachResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"nombre"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"long"`
	Country   string  `json:"pais"`
}

// Index handles GET /.
func (h *Handler) Index(c *gin.Context) {
	groups := usecase.BuildGroups(h.registry.List(), h.countries)
	selector, err := usecase.RenderSelector(groups)
	if err != nil {
		h.logger.Error("failed to render selector", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Selector":  selector,
		"Countries": h.countries,
	})
}

// GetForecast handles GET /surf/:id.
func (h *Handler) GetForecast(c *gin.Context) {
	forecast, err := h.forecastUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// ListBeaches handles GET /playas.
func (h *Handler) ListBeaches(c *gin.Context) {
	beaches := h.registry.List()

	response := make([]BeachResponse, len(beaches))
	for i, b := range beaches {
		response[i] = BeachResponse{
			ID:        b.ID,
			Name:      b.Name,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			Country:   b.Country,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"playas": response,
		"count":  len(response),
	})
}

// AddBeach handles POST /playas/add.
func (h *Handler) AddBeach(c *gin.Context) {
	var req AddBeachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	msg, err := h.registry.Add(c.Request.Context(), domain.Beach{
		ID:        req.ID,
		Name:      req.Name,
		Latitude:  *req.Lat,
		Longitude: *req.Long,
		Country:   req.Country,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": msg})
}

// DeleteBeach handles DELETE /playas/delete/:id.
func (h *Handler) DeleteBeach(c *gin.Context) {
	msg, err := h.registry.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": msg})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"beaches": h.registry.Len(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// writeError maps domain errors to status codes with a {"detail": ...} body.
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		status int
		detail string
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, detail = http.StatusNotFound, "Playa no encontrada"
	case errors.Is(err, domain.ErrDuplicateID):
		status, detail = http.StatusBadRequest, "El ID de la playa ya existe"
	case errors.Is(err, domain.ErrInvalidBeach):
		status, detail = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrProtected):
		status, detail = http.StatusForbidden, "Esta playa está protegida y no se puede eliminar"
	case errors.Is(err, domain.ErrUpstream):
		status, detail = http.StatusBadGateway, "No se pudo obtener la previsión"
	default:
		status, detail = http.StatusInternalServerError, "Error interno"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"detail": detail})
}
