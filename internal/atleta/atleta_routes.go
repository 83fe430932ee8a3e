package atleta

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAtletaRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewAtletaRepository(db)
	controller := NewAtletaController(repo)

	atletas := router.Group("/atletas")
	{
		atletas.POST("/", controller.CreateAtleta)
		atletas.GET("/", controller.GetAllAtletas)
		atletas.GET("/:id", controller.GetAtletaByID)
	}
}
