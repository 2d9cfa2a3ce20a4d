package main

import (
	_ "payment_gateway/docs"
	"payment_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Gateway API
// @version         1.0
// @description     Payment processing service (Stripe charges + transaction history) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
