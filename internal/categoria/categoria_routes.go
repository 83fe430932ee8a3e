package categoria

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterCategoriaRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewCategoriaRepository(db)
	controller := NewCategoriaController(repo)

	categorias := router.Group("/categorias")
	{
		categorias.POST("/", controller.CreateCategoria)
		categorias.GET("/", controller.GetAllCategorias)
	}
}
