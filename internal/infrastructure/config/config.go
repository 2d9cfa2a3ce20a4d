package config

import "os"

// Config is the explicit configuration object handed to constructors at
// startup. Nothing outside this package reads payment or database settings
// from the environment directly.
type Config struct {
	Port     string
	Currency string

	StripeSecretKey      string
	StripePublishableKey string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	UsersTable        string
	TransactionsTable string
}

// Load builds a Config from the environment with local-friendly defaults.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - PAYMENT_CURRENCY (default: usd)
//   - STRIPE_SECRET_KEY / STRIPE_PUBLISHABLE_KEY
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - USERS_TABLE (default: users) / TRANSACTIONS_TABLE (default: transactions)
func Load() *Config {
	return &Config{
		Port:     getenvDefault("PORT", "8080"),
		Currency: getenvDefault("PAYMENT_CURRENCY", "usd"),

		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),

		AWSRegion: getenvDefault("AWS_REGION", "us-east-1"),
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		UsersTable:        getenvDefault("USERS_TABLE", "users"),
		TransactionsTable: getenvDefault("TRANSACTIONS_TABLE", "transactions"),
	}
}

// TestCardTokens are the provider's sandbox tokens, exposed on the config
// endpoint so demo frontends can exercise the payment flow.
var TestCardTokens = map[string]string{
	"visa_success":       "tok_visa",
	"visa_declined":      "tok_chargeDeclined",
	"insufficient_funds": "tok_chargeDeclinedInsufficientFunds",
	"mastercard":         "tok_mastercard",
	"amex":               "tok_amex",
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
