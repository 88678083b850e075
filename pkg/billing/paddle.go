package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	paddle "github.com/PaddleHQ/paddle-go-sdk/v4"

	"github.com/stagecrew/stagekit/pkg/plan"
)

// planKeyField is the product custom-data field that names the plan a
// product maps to. Products without it are ignored by FetchPlanConfigs.
const planKeyField = "plan_key"

// PaddleConfig holds configuration for the Paddle billing provider.
type PaddleConfig struct {
	APIKey      string `env:"PADDLE_API_KEY,required"`
	Environment string `env:"PADDLE_ENVIRONMENT" envDefault:"production"`
}

// PaddleProvider implements Provider on top of the Paddle Billing API.
// Plan limits live in product custom data, so pricing changes ship from the
// Paddle dashboard without a deploy.
type PaddleProvider struct {
	client *paddle.SDK
	config PaddleConfig
}

// NewPaddleProvider creates a Paddle billing provider.
func NewPaddleProvider(config PaddleConfig) (*PaddleProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: paddle API key is required", ErrInvalidConfig)
	}

	var client *paddle.SDK
	var err error

	switch strings.ToLower(config.Environment) {
	case "sandbox":
		client, err = paddle.NewSandbox(config.APIKey)
	case "production", "":
		client, err = paddle.New(config.APIKey)
	default:
		return nil, fmt.Errorf("%w: invalid paddle environment: %s", ErrInvalidConfig, config.Environment)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create paddle client: %v", ErrInvalidConfig, err)
	}

	return &PaddleProvider{client: client, config: config}, nil
}

// FetchPlanConfigs lists Paddle products and turns each one carrying a known
// plan_key custom-data field into a PlanConfig. The remaining custom-data
// entries are flattened to strings and become the limit metadata.
func (p *PaddleProvider) FetchPlanConfigs(ctx context.Context) ([]PlanConfig, error) {
	res, err := p.client.ProductsClient.ListProducts(ctx, &paddle.ListProductsRequest{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list paddle products: %v", ErrProviderUnavailable, err)
	}

	var configs []PlanConfig
	err = res.Iter(ctx, func(product *paddle.Product) (bool, error) {
		cfg, ok := planConfigFromCustomData(product.CustomData)
		if ok {
			configs = append(configs, cfg)
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to iterate paddle products: %v", ErrProviderUnavailable, err)
	}

	return configs, nil
}

// planConfigFromCustomData maps one product's custom data to a PlanConfig.
// The plan_key field must name a known plan exactly; everything else is
// coerced to a string metadata value.
func planConfigFromCustomData(data paddle.CustomData) (PlanConfig, bool) {
	raw, _ := data[planKeyField].(string)
	if raw == "" || plan.ParseKey(raw) != plan.Key(raw) {
		return PlanConfig{}, false
	}

	meta := make(map[string]string, len(data))
	for field, value := range data {
		if field == planKeyField {
			continue
		}
		switch v := value.(type) {
		case string:
			meta[field] = v
		case float64:
			meta[field] = strconv.FormatInt(int64(v), 10)
		case bool:
			meta[field] = strconv.FormatBool(v)
		}
	}

	return PlanConfig{PlanKey: plan.Key(raw), Metadata: meta}, true
}

// CreateCheckoutLink creates a hosted checkout session in Paddle.
func (p *PaddleProvider) CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error) {
	if req.PriceID == "" {
		return nil, ErrMissingPriceID
	}
	if req.CustomerID == "" {
		return nil, ErrMissingCustomerID
	}

	item := paddle.NewCreateTransactionItemsTransactionItemFromCatalog(&paddle.TransactionItemFromCatalog{
		PriceID:  req.PriceID,
		Quantity: 1,
	})

	transactionReq := &paddle.CreateTransactionRequest{
		Items: []paddle.CreateTransactionItems{*item},
		CustomData: paddle.CustomData{
			"customer_id": req.CustomerID,
		},
	}
	if req.Email != "" {
		transactionReq.CustomData["email"] = req.Email
	}
	if req.SuccessURL != "" {
		transactionReq.Checkout = &paddle.TransactionCheckout{
			URL: paddle.PtrTo(req.SuccessURL),
		}
	}

	transaction, err := p.client.TransactionsClient.CreateTransaction(ctx, transactionReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create paddle transaction: %v", ErrProviderUnavailable, err)
	}

	if transaction.Checkout == nil || transaction.Checkout.URL == nil || *transaction.Checkout.URL == "" {
		return nil, ErrNoCheckoutURL
	}

	return &CheckoutLink{
		URL:       *transaction.Checkout.URL,
		SessionID: transaction.ID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil
}

// GetCustomerPortalLink returns a link to Paddle's customer portal scoped to
// one subscription.
func (p *PaddleProvider) GetCustomerPortalLink(ctx context.Context, customerID, subscriptionID string) (*PortalLink, error) {
	if customerID == "" {
		return nil, ErrMissingCustomerID
	}
	if subscriptionID == "" {
		return nil, ErrMissingSubscriptionID
	}

	portalSession, err := p.client.CustomerPortalSessionsClient.CreateCustomerPortalSession(ctx, &paddle.CreateCustomerPortalSessionRequest{
		CustomerID:      customerID,
		SubscriptionIDs: []string{subscriptionID},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create paddle customer portal session: %v", ErrProviderUnavailable, err)
	}

	link := &PortalLink{
		URL:       portalSession.URLs.General.Overview,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	for _, subURL := range portalSession.URLs.Subscriptions {
		if subURL.ID != subscriptionID {
			continue
		}
		link.CancelURL = subURL.CancelSubscription
		link.UpdatePaymentURL = subURL.UpdateSubscriptionPaymentMethod
		break
	}

	if link.URL == "" {
		return nil, ErrNoPortalURL
	}
	return link, nil
}
