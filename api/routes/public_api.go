package routes

import (
	"nexus/api/handlers"
	"nexus/db"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func PublicApi(router *gin.Engine, store *db.Store) *gin.RouterGroup {
	postHandler := handlers.NewPostHandler(store)
	productHandler := handlers.NewProductHandler(store)
	userHandler := handlers.NewUserHandler(store)

	api := router.Group("/api/")
	{
		api.GET("posts", postHandler.List)
		api.POST("posts", postHandler.Create)
		api.GET("products", productHandler.List)
		api.GET("users/:username", userHandler.Get)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return api
}
