package main

import (
	_ "github.com/grupo95/job-ledger-service/docs"
	"github.com/grupo95/job-ledger-service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Job Ledger Service API
// @version         1.0
// @description     Job financial ledger and billing workflow (pricing approval, change orders, invoices, payments) backed by PostgreSQL.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorRole
// @in header
// @name X-Actor-Role
// @description Role of the acting user: sales_rep, team_lead, office or owner.

func main() {
	routes.Run()
}
