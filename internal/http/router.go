package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed web
var webFS embed.FS

// SetupRouter creates and configures the Gin router.
// An empty allowedOrigins list allows every origin.
func SetupRouter(handler *Handler, allowedOrigins []string, logger *zap.Logger) (*gin.Engine, error) {
	router := gin.New()
	router.Use(RequestLogger(logger), gin.Recovery())

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, RequestIDHeader)
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Page and static assets.
	tmpl, err := template.ParseFS(webFS, "web/templates/*.html")
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return nil, err
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/", handler.Index)

	// Forecast.
	router.GET("/surf/:id", handler.GetForecast)

	// Beach registry.
	playas := router.Group("/playas")
	playas.GET("", handler.ListBeaches)
	playas.POST("/add", handler.AddBeach)
	playas.DELETE("/delete/:id", handler.DeleteBeach)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router, nil
}
