package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ruanmedina/workout-api/internal/atleta"
	"github.com/ruanmedina/workout-api/internal/categoria"
	"github.com/ruanmedina/workout-api/internal/centro"
)

func SetupRoutes(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("")
	categoria.RegisterCategoriaRoutes(api, db)
	centro.RegisterCentroRoutes(api, db)
	atleta.RegisterAtletaRoutes(api, db)

	return r
}
