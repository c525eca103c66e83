package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scaffold-service/internal/middleware"
)

// NewRouter builds the gin engine with every route of the service.
func NewRouter(codegen *CodegenHandler, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	menu := router.Group("/admin/base/sys/menu")
	{
		codegen.RegisterRoutes(menu)
		menu.GET("/scaffolds", ListScaffoldRecords)
		menu.GET("/scaffolds/:id", GetScaffoldRecord)
	}
	return router
}
