package routes

import (
	"strconv"

	_ "odonto_docs/docs"
	"odonto_docs/internal/adapter/http/handlers"
	"odonto_docs/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathV1                = "/v1"
	PathConsents          = "/consentimientos"
	PathLabOrders         = "/ordenes-laboratorio"
	PathProstheses        = "/protesis"
	PathFabricationOrders = "/fabricacion"
	PathLabInvoices       = "/lab-invoices"
	PathDocumentation     = "/documentacion"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Consents          *handlers.ConsentHandler
	LabOrders         *handlers.LabOrderHandler
	Prostheses        *handlers.ProsthesisHandler
	FabricationOrders *handlers.FabricationOrderHandler
	LabInvoices       *handlers.LabInvoiceHandler
	DocumentTemplates *handlers.DocumentTemplateHandler
}

// NewRouter builds the engine with middlewares, docs, metrics and the /v1 API.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.AccessLog())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)

	api := v1.Group("")
	api.Use(middleware.RequireIdentity())
	addConsentRoutes(api, h.Consents)
	addWorkOrderRoutes(api, h.LabOrders, h.Prostheses, h.FabricationOrders)
	addLabInvoiceRoutes(api, h.LabInvoices)
	addDocumentationRoutes(api, h.DocumentTemplates)
	return router
}

// Run starts the server and blocks.
func Run(port int, h Handlers) {
	router := NewRouter(h)
	zap.S().Infof("[http] listening port=%d", port)
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		zap.S().Fatalf("Failed to startup the application: %v", err)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
