package centro

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterCentroRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewCentroRepository(db)
	controller := NewCentroController(repo)

	centros := router.Group("/centros-treinamento")
	{
		centros.POST("/", controller.CreateCentro)
		centros.GET("/", controller.GetAllCentros)
	}
}
