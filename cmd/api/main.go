package main

import (
	_ "servicios_ili/docs"
	"servicios_ili/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
)

// @title           Servicios ILI API
// @version         1.0
// @description     Field service management (clients, tasks, budgets, agenda) backed by an append-only tabular ledger.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	// Amounts serialize as JSON numbers, matching the clients the API
	// already has.
	decimal.MarshalJSONWithoutQuotes = true

	routes.Run()
}
