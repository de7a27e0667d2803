package main

import (
	"context"
	"net/http"
	"time"

	"discovery-api/docs"
	"discovery-api/internal/config"
	"discovery-api/internal/handler"
	"discovery-api/internal/repository"
	"discovery-api/internal/service"
	"discovery-api/internal/yelp"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Discovery API
//	@description	Content-discovery proxy aggregating restaurant search results with response caching.
//	@version		1.0

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot initialize cache table")
	}

	if config.YelpAPIKey == "" {
		log.Warn().Msg("yelp api key not configured, restaurant search will return errors")
	}
	client := yelp.NewClient(config.YelpAPIKey, config.YelpBaseURL)

	aggregator := service.NewAggregator(client)
	enricher := service.NewDetailEnricher(client, config.MaxDetailLookups, config.DetailWorkers)
	restaurantService := service.NewRestaurantService(aggregator, enricher, repo, time.Duration(config.CacheTTLMinutes)*time.Minute)

	restaurantHandler := handler.NewRestaurantHandler(restaurantService)

	docs.SwaggerInfo.BasePath = "/"

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/api/restaurants", restaurantHandler.Search)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
