package main

import (
	"log"
	"net/http"
	"strconv"

	"carlink/src/controllers"

	"github.com/gin-gonic/gin"
)

func carHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/cars", func(ctx *gin.Context) {
			cars, err := controllers.ListCars()
			if err != nil {
				log.Printf("[ListCars] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, cars)
		}).
		GET("/cars/fetching", func(ctx *gin.Context) {
			cars, err := controllers.ListCars()
			if err != nil {
				log.Printf("[ListCars] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, cars)
		}).
		GET("/carslider/data-retrieve", func(ctx *gin.Context) {
			cars, err := controllers.ListCars()
			if err != nil {
				log.Printf("[ListCars] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, cars)
		}).
		GET("/cars/ratings", func(ctx *gin.Context) {
			ratings, err := controllers.GetCarRatings()
			if err != nil {
				log.Printf("[GetCarRatings] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, ratings)
		}).
		GET("/cars/:id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			car, err := controllers.GetCar(uint(atoi))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, car)
		})
	return g
}
