package routes

import (
	"odonto_docs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, lab *handlers.LabOrderHandler, prosthesis *handlers.ProsthesisHandler, fabrication *handlers.FabricationOrderHandler) {
	labOrders := rg.Group(PathLabOrders)
	{
		labOrders.GET("", lab.List)
		labOrders.POST("", lab.Create)
		labOrders.GET("/:id", lab.GetByID)
		labOrders.PUT("/:id", lab.Update)
		labOrders.DELETE("/:id", lab.Delete)
		labOrders.PUT("/:id/estado", lab.ChangeStatus)
		labOrders.POST("/:id/adjuntos", lab.AddAttachments)
		labOrders.DELETE("/:id/adjuntos/:adjunto_id", lab.RemoveAttachment)
	}

	prostheses := rg.Group(PathProstheses)
	{
		prostheses.GET("", prosthesis.List)
		prostheses.POST("", prosthesis.Create)
		prostheses.GET("/:id", prosthesis.GetByID)
		prostheses.PUT("/:id", prosthesis.Update)
		prostheses.PUT("/:id/estado", prosthesis.ChangeStatus)
		prostheses.POST("/:id/archivos", prosthesis.AddFiles)
		prostheses.DELETE("/:id/archivos/:archivo_id", prosthesis.RemoveFile)
		prostheses.GET("/:id/notas", prosthesis.ListMessages)
		prostheses.POST("/:id/notas", prosthesis.PostMessage)
	}

	fabricationOrders := rg.Group(PathFabricationOrders)
	{
		fabricationOrders.GET("", fabrication.List)
		fabricationOrders.POST("", fabrication.Create)
		fabricationOrders.GET("/:id", fabrication.GetByID)
		fabricationOrders.PUT("/:id", fabrication.Update)
		fabricationOrders.PUT("/:id/estado", fabrication.ChangeStatus)
		fabricationOrders.POST("/:id/adjuntos", fabrication.AddAttachments)
		fabricationOrders.DELETE("/:id/adjuntos/:adjunto_id", fabrication.RemoveAttachment)
	}
}
