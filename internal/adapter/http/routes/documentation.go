package routes

import (
	"odonto_docs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addConsentRoutes(rg *gin.RouterGroup, h *handlers.ConsentHandler) {
	consents := rg.Group(PathConsents)
	{
		consents.GET("/plantillas", h.ListTemplates)
		consents.POST("/plantillas", h.CreateTemplate)
		consents.POST("/generar", h.Generate)
		consents.GET("", h.ListByPatient)
		consents.GET("/:id", h.GetByID)
		consents.PUT("/:id/firmar", h.Sign)
		consents.PUT("/:id/revocar", h.Revoke)
	}
}

func addDocumentationRoutes(rg *gin.RouterGroup, h *handlers.DocumentTemplateHandler) {
	docs := rg.Group(PathDocumentation)
	{
		docs.GET("/placeholders", h.Placeholders)
		docs.GET("/plantillas", h.List)
		docs.POST("/plantillas", h.Create)
		docs.GET("/plantillas/:id", h.GetByID)
		docs.PUT("/plantillas/:id", h.Update)
		docs.DELETE("/plantillas/:id", h.Delete)
	}
}

func addLabInvoiceRoutes(rg *gin.RouterGroup, h *handlers.LabInvoiceHandler) {
	invoices := rg.Group(PathLabInvoices)
	{
		invoices.GET("", h.List)
		invoices.POST("", h.Create)
		invoices.GET("/:id", h.GetByID)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
		invoices.POST("/:id/pay", h.Pay)
		invoices.POST("/:id/anular", h.Cancel)
	}
}
