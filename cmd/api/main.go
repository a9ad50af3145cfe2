package main

import (
	"log/slog"
	"os"

	_ "dispatch_service/docs"
	"dispatch_service/internal/adapter/http/routes"
	"dispatch_service/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dispatch Service API
// @version         1.0
// @description     Multi-tenant technician dispatch: scheduling, route optimization and ranked suggestions.
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
	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLog()
	slog.SetDefault(logger)

	if err := routes.Run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		closeLog()
		os.Exit(1)
	}
}
