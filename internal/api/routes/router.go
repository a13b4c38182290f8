package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-platform/docs"
	"github.com/linskybing/forms-platform/internal/api/handlers"
	"github.com/linskybing/forms-platform/internal/api/middleware"
	"github.com/linskybing/forms-platform/internal/application"
	"github.com/linskybing/forms-platform/pkg/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewFormsRouter builds the forms service engine with every route under
// basePath.
func NewFormsRouter(basePath string, origins []string, svc *application.Services, log *logger.Logger) *gin.Engine {
	metrics := middleware.NewMetrics("forms")
	r := newEngine(log, origins, metrics)

	docs.FormsSwaggerInfo.BasePath = basePath
	RegisterFormsRoutes(r.Group(basePath), handlers.New(svc), metrics)
	return r
}

// NewAuthRouter builds the auth service engine. Every origin is allowed.
func NewAuthRouter(basePath string, svc *application.Services, log *logger.Logger) *gin.Engine {
	metrics := middleware.NewMetrics("auth")
	r := newEngine(log, nil, metrics)

	docs.AuthSwaggerInfo.BasePath = basePath
	RegisterAuthRoutes(r.Group(basePath), handlers.New(svc), metrics)
	return r
}

func newEngine(log *logger.Logger, origins []string, metrics *middleware.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.CORS(origins),
		metrics.Instrument(),
	)
	return r
}

func RegisterFormsRoutes(g *gin.RouterGroup, h *handlers.Handlers, metrics *middleware.Metrics) {
	g.GET("/health", handlers.Health)
	g.GET("/metrics", metrics.Handler())
	g.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.FormsSwaggerInfo.InstanceName())))

	// The collection answers with and without a trailing slash.
	for _, root := range []string{"", "/"} {
		g.POST(root, h.Form.CreateForm)
		g.GET(root, h.Form.ListForms)
	}
	g.GET("/:formId", h.Form.GetForm)
	g.PUT("/:formId", h.Form.ReplaceForm)
	g.DELETE("/:formId", h.Form.DeleteForm)
}

func RegisterAuthRoutes(g *gin.RouterGroup, h *handlers.Handlers, metrics *middleware.Metrics) {
	g.GET("/health", handlers.Health)
	g.GET("/metrics", metrics.Handler())
	g.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.AuthSwaggerInfo.InstanceName())))

	g.POST("/register", h.User.Register)
}
