package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort               = 8080
	defaultRegion             = "us-east-1"
	defaultAttachmentMaxBytes = 50 << 20
)

// Tables groups the DynamoDB table names.
type Tables struct {
	LabOrders         string
	Prostheses        string
	FabricationOrders string
	Consents          string
	ConsentTemplates  string
	DocumentTemplates string
	LabInvoices       string
}

// Config is read from the environment; a .env file is autoloaded by cmd/api.
//
// Supported env vars (local-friendly):
//   - PORT (default: 8080)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT, S3_ENDPOINT, SQS_ENDPOINT (optional; e.g. http://localstack:4566)
//   - ATTACHMENTS_BUCKET (default: documentacion-adjuntos)
//   - EVENTS_QUEUE_URL (optional; events are dropped when empty)
//   - ATTACHMENT_MAX_BYTES (default: 52428800)
type Config struct {
	Port               int
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	DynamoDBEndpoint   string
	S3Endpoint         string
	SQSEndpoint        string
	AttachmentsBucket  string
	EventsQueueURL     string
	AttachmentMaxBytes int64
	MercadoPagoToken   string
	PaymentGatewayMock bool
	LogLevel           string
	LogFormat          string
	Tables             Tables
}

func Load() Config {
	return Config{
		Port:               getenvInt("PORT", defaultPort),
		Region:             getenvDefault("AWS_REGION", defaultRegion),
		AccessKeyID:        getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey:    getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		SQSEndpoint:        os.Getenv("SQS_ENDPOINT"),
		AttachmentsBucket:  getenvDefault("ATTACHMENTS_BUCKET", "documentacion-adjuntos"),
		EventsQueueURL:     os.Getenv("EVENTS_QUEUE_URL"),
		AttachmentMaxBytes: int64(getenvInt("ATTACHMENT_MAX_BYTES", defaultAttachmentMaxBytes)),
		MercadoPagoToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock: getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		LogFormat:          getenvDefault("LOG_FORMAT", "json"),
		Tables: Tables{
			LabOrders:         getenvDefault("LAB_ORDERS_TABLE", "ordenes_laboratorio"),
			Prostheses:        getenvDefault("PROSTHESES_TABLE", "protesis"),
			FabricationOrders: getenvDefault("FABRICATION_ORDERS_TABLE", "ordenes_fabricacion"),
			Consents:          getenvDefault("CONSENTS_TABLE", "consentimientos"),
			ConsentTemplates:  getenvDefault("CONSENT_TEMPLATES_TABLE", "consentimiento_plantillas"),
			DocumentTemplates: getenvDefault("DOCUMENT_TEMPLATES_TABLE", "documento_plantillas"),
			LabInvoices:       getenvDefault("LAB_INVOICES_TABLE", "lab_invoices"),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
