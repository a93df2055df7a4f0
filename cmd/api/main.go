package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/LuisTellezSirocco/GeoAtmoPlot/docs"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/config"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/handler"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/registry"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/service"
)

//	@title			GeoAtmoPlot API
//	@version		1.0
//	@description	Locates the nearest forecast-model grid points for a coordinate and renders them as KML or an interactive map.
//	@BasePath		/

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger := cfg.Logger()
	log.Logger = logger

	// Model catalog; a registration collision here is a programming error.
	reg, err := registry.NewBuiltin()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build model catalog")
	}

	// Initialize layers
	gridPointService := service.NewGridPointService(reg, cfg.MaxPointsPerModel)

	gridPointHandler := handler.NewGridPointHandler(gridPointService)
	catalogHandler := handler.NewCatalogHandler(reg)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/v1")
	v1.GET("/models", catalogHandler.List)
	v1.GET("/gridpoints", gridPointHandler.GridPoints)
	v1.GET("/gridpoints/kml", gridPointHandler.MarkerFile)
	v1.GET("/gridpoints/map", gridPointHandler.Map)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("addr", cfg.ServerAddress).Int("models", len(reg.List())).Msg("starting server")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
