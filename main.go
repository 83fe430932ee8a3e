package main

import (
	"log"

	"github.com/ruanmedina/workout-api/config"
	_ "github.com/ruanmedina/workout-api/docs"
	"github.com/ruanmedina/workout-api/internal/atleta"
	"github.com/ruanmedina/workout-api/internal/categoria"
	"github.com/ruanmedina/workout-api/internal/centro"
	"github.com/ruanmedina/workout-api/routes"
)

// @title Workout API
// @version 1.0
// @description API para competição de CrossFit: atletas, categorias e centros de treinamento.
// @host localhost:8000
// @BasePath /
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&categoria.Categoria{},
		&centro.CentroTreinamento{},
		&atleta.Atleta{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
