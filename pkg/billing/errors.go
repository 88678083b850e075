package billing

import "errors"

var (
	// ErrProviderUnavailable indicates the billing provider could not be reached
	// or returned an unexpected response.
	ErrProviderUnavailable = errors.New("billing.errors.provider_unavailable")

	// ErrInvalidConfig indicates the provider configuration is incomplete or
	// inconsistent.
	ErrInvalidConfig = errors.New("billing.errors.invalid_config")

	// ErrMissingPriceID indicates a checkout was requested without a price.
	ErrMissingPriceID = errors.New("billing.errors.missing_price_id")

	// ErrMissingCustomerID indicates a checkout or portal request lacked the
	// provider customer identifier.
	ErrMissingCustomerID = errors.New("billing.errors.missing_customer_id")

	// ErrMissingSubscriptionID indicates a portal request lacked the provider
	// subscription identifier.
	ErrMissingSubscriptionID = errors.New("billing.errors.missing_subscription_id")

	// ErrNoCheckoutURL indicates the provider accepted the transaction but did
	// not return a hosted checkout URL.
	ErrNoCheckoutURL = errors.New("billing.errors.no_checkout_url")

	// ErrNoPortalURL indicates the provider returned a portal session without
	// a usable URL.
	ErrNoPortalURL = errors.New("billing.errors.no_portal_url")
)
