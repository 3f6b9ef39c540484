package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/skillmap/skillmap/docs" // This is required for swagger docs
)

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine, options ...func(*ginSwagger.Config)) {
	options = append([]func(*ginSwagger.Config){ginSwagger.URL("/swagger/doc.json")}, options...)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, options...))
}
