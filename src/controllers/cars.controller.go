package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"

	"carlink/src/db"
	"carlink/src/lib"
	"carlink/src/models"
	"carlink/src/types"

	"gorm.io/gorm"
)

const carsCacheKey = "cars"

type CarView struct {
	ID    uint    `json:"id"`
	Brand string  `json:"brand"`
	Model string  `json:"model"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

func carView(car *models.Car) CarView {
	view := CarView{
		ID:    car.ID,
		Brand: car.Brand,
		Model: car.Model,
		Price: car.Price,
	}
	if len(car.Image) > 0 {
		view.Image = base64.StdEncoding.EncodeToString(car.Image)
	}
	return view
}

// ListCars serves the read-mostly catalog through a redis read-through
// cache. The catalog is owned externally, so a stale read is acceptable.
func ListCars() ([]CarView, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		val := rd.JSONGet(context.Background(), carsCacheKey).Val()
		if val != "" {
			var cached []CarView
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	var cars []models.Car
	if err := db.GetDb().Model(&models.Car{}).Find(&cars).Error; err != nil {
		return nil, err
	}
	views := make([]CarView, 0, len(cars))
	for i := range cars {
		views = append(views, carView(&cars[i]))
	}

	if rd != nil {
		if err := rd.JSONSet(context.Background(), carsCacheKey, "$", views).Err(); err != nil {
			log.Printf("[redis] Error caching car catalog: %s\n", err.Error())
		}
	}
	return views, nil
}

func GetCar(carID uint) (*CarView, error) {
	var car models.Car
	err := db.GetDb().
		Model(&models.Car{}).
		Where("id = ?", carID).
		First(&car).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Message: "Vehicle not found"}
		}
		return nil, err
	}
	view := carView(&car)
	return &view, nil
}

// GetCarRatings aggregates feedback into an average per car.
func GetCarRatings() (map[uint]float64, error) {
	var rows []struct {
		CarID         uint
		AverageRating float64
	}
	err := db.GetDb().
		Model(&models.Feedback{}).
		Select("car_id", "AVG(rating) AS average_rating").
		Group("car_id").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	ratings := make(map[uint]float64, len(rows))
	for _, row := range rows {
		ratings[row.CarID] = row.AverageRating
	}
	return ratings, nil
}
