package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"odonto_docs/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway settles lab invoices through Mercado Pago. In mock mode no
// request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		zap.S().Infof("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		zap.S().Errorf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	zap.S().Infof("[payment][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return mockPayment(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, fmt.Errorf("decode payment request: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		zap.S().Warnf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	zap.S().Infof("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPayment answers like the provider would for an approved charge, echoing the
// invoice reference and amount so the stored payload matches the request.
func mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	var req payment.Request
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &req); err != nil {
			return "", "", nil, fmt.Errorf("decode payment request: %w", err)
		}
	}

	now := time.Now().UTC()
	resp := payment.Response{
		ID:                int(now.UnixNano()),
		Status:            "approved",
		StatusDetail:      "accredited",
		ExternalReference: req.ExternalReference,
		TransactionAmount: req.TransactionAmount,
		Description:       req.Description,
		PaymentMethodID:   req.PaymentMethodID,
		DateCreated:       now,
		DateApproved:      now,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := strconv.Itoa(resp.ID)
	zap.S().Infof("[payment][gateway] mock create success provider_payment_id=%s external_reference=%s amount=%.2f", id, resp.ExternalReference, resp.TransactionAmount)
	return id, resp.Status, b, nil
}
