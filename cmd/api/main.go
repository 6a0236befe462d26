package main

import (
	_ "lista_presentes/docs"
	"lista_presentes/internal/adapter/http/routes"
	"lista_presentes/internal/infrastructure/config"
	"lista_presentes/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Lista de Presentes API
// @version         1.0
// @description     Gift registry backend: login, gift items and purchase confirmation email.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Log.Fatalf("invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logging.Log.Fatalf("invalid configuration: %v", err)
	}
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		logging.Log.Fatalf("invalid logging configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		logging.Log.Fatalf("server stopped: %v", err)
	}
}
