package main

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"carlink/src/controllers"
	"carlink/src/types"
	"carlink/src/utils"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				missing := utils.MissingRequiredFields(err, &body)
				if len(missing) > 0 {
					ctx.JSON(http.StatusBadRequest, gin.H{
						"message":       "Missing required fields",
						"missingFields": missing,
					})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			bookingID, err := controllers.CreateBooking(&body)
			if err != nil {
				log.Printf("[CreateBooking] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"message":   "Booking created successfully",
				"bookingId": bookingID,
			})
		}).
		GET("/occupied-dates/:carId", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("carId"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			occupied, err := controllers.GetOccupiedDates(uint(atoi))
			if err != nil {
				log.Printf("[GetOccupiedDates] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, occupied)
		}).
		GET("/bookings/user/:id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
				return
			}
			bookings, err := controllers.GetUserBookings(uint(atoi))
			if err != nil {
				log.Printf("[GetUserBookings] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		}).
		GET("/bookings/:bookingId", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("bookingId"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			booking, err := controllers.GetBooking(uint(atoi))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		GET("/booking/data-retrieve/:booking_id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("booking_id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			booking, err := controllers.GetBooking(uint(atoi))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		PUT("/bookings/:bookingId/confirm-price", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("bookingId"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var body types.ConfirmPriceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			if err := controllers.ConfirmPrice(uint(atoi), body.UserID, body.ClientEmail); err != nil {
				log.Printf("[ConfirmPrice] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Price accepted successfully"})
		}).
		PUT("/bookings/cancel/:booking_id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("booking_id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Booking ID is required."})
				return
			}
			var body types.CancelBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			booking, err := controllers.CancelBooking(uint(atoi), body.CancelReason, body.UserID, body.ClientEmail)
			if err != nil {
				log.Printf("[CancelBooking] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"message": "Booking cancelled successfully.",
				"booking": booking,
			})
		}).
		PUT("/booking/update/:bookingId", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("bookingId"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var body types.UpdateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			booking, err := controllers.UpdateBooking(uint(atoi), &body)
			if err != nil {
				log.Printf("[UpdateBooking] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"message": "Booking updated successfully",
				"booking": booking,
			})
		}).
		PUT("/upload-receipt/:bookingId", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("bookingId"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			fileHeader, err := ctx.FormFile("receipt")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				respondError(ctx, err)
				return
			}
			defer file.Close()
			fileBytes, err := io.ReadAll(file)
			if err != nil {
				respondError(ctx, err)
				return
			}
			userID, _ := strconv.Atoi(ctx.PostForm("user_id"))
			clientEmail := ctx.PostForm("clientEmail")
			if err := controllers.UploadReceipt(uint(atoi), fileBytes, uint(userID), clientEmail); err != nil {
				log.Printf("[UploadReceipt] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Receipt uploaded successfully"})
		})
	return g
}
