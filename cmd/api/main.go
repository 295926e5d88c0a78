package main

import (
	"context"

	_ "odonto_docs/docs"
	"odonto_docs/internal/adapter/http/handlers"
	"odonto_docs/internal/adapter/http/routes"
	"odonto_docs/internal/adapter/persistence/repository"
	"odonto_docs/internal/infrastructure/config"
	"odonto_docs/internal/infrastructure/database"
	"odonto_docs/internal/infrastructure/logger"
	"odonto_docs/internal/infrastructure/messaging"
	"odonto_docs/internal/infrastructure/payments"
	"odonto_docs/internal/infrastructure/storage"
	"odonto_docs/internal/usecase"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Documentación y Protocolos API
// @version         1.0
// @description     Consents, lab orders, prostheses, fabrication orders, lab invoices and document templates backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	flush, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer flush()

	awsCfg, err := database.NewAWSConfig(context.Background(), cfg)
	if err != nil {
		zap.S().Fatalf("failed to create aws config: %v", err)
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg)

	deps := usecase.Deps{
		Events:             eventPublisher(awsCfg, cfg),
		MaxAttachmentBytes: cfg.AttachmentMaxBytes,
	}
	if s3, err := storage.NewS3FileStorage(awsCfg, cfg); err != nil {
		zap.S().Warnf("[storage] attachments disabled: %v", err)
	} else {
		deps.Storage = s3
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken, cfg.PaymentGatewayMock)
	if err != nil {
		zap.S().Warnf("[payments] gateway unavailable: %v", err)
	}

	labOrders := usecase.NewLabOrderUseCase(repository.NewLabOrderDynamoRepository(ddb, cfg.Tables.LabOrders), deps)
	prostheses := usecase.NewProsthesisUseCase(repository.NewProsthesisDynamoRepository(ddb, cfg.Tables.Prostheses), deps)
	fabrication := usecase.NewFabricationOrderUseCase(repository.NewFabricationOrderDynamoRepository(ddb, cfg.Tables.FabricationOrders), deps)
	consents := usecase.NewConsentUseCase(
		repository.NewConsentTemplateDynamoRepository(ddb, cfg.Tables.ConsentTemplates),
		repository.NewConsentDocumentDynamoRepository(ddb, cfg.Tables.Consents),
		deps,
	)
	templates := usecase.NewDocumentTemplateUseCase(repository.NewDocumentTemplateDynamoRepository(ddb, cfg.Tables.DocumentTemplates), deps)

	var invoiceGateway interfaces.IPaymentGateway
	if gateway != nil {
		invoiceGateway = gateway
	}
	invoices := usecase.NewLabInvoiceUseCase(repository.NewLabInvoiceDynamoRepository(ddb, cfg.Tables.LabInvoices), invoiceGateway, deps)

	routes.Run(cfg.Port, routes.Handlers{
		Consents:          handlers.NewConsentHandler(consents),
		LabOrders:         handlers.NewLabOrderHandler(labOrders),
		Prostheses:        handlers.NewProsthesisHandler(prostheses),
		FabricationOrders: handlers.NewFabricationOrderHandler(fabrication),
		LabInvoices:       handlers.NewLabInvoiceHandler(invoices),
		DocumentTemplates: handlers.NewDocumentTemplateHandler(templates),
	})
}

func eventPublisher(awsCfg aws.Config, cfg config.Config) interfaces.IEventPublisher {
	if cfg.EventsQueueURL == "" {
		zap.S().Infof("[events] EVENTS_QUEUE_URL not set, events are dropped")
		return messaging.NopEventPublisher{}
	}
	return messaging.NewSQSEventPublisher(awsCfg, cfg)
}
