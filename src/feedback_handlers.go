package main

import (
	"log"
	"net/http"
	"strconv"

	"carlink/src/controllers"
	"carlink/src/types"

	"github.com/gin-gonic/gin"
)

func feedbackHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/feedback/submit", func(ctx *gin.Context) {
			var body types.SubmitFeedbackRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			feedbackID, err := controllers.SubmitFeedback(&body)
			if err != nil {
				log.Printf("[SubmitFeedback] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"message":    "Feedback submitted successfully.",
				"feedbackId": feedbackID,
			})
		}).
		GET("/feedback/check/:bookingId", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("bookingId"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing booking ID"})
				return
			}
			hasFeedback, err := controllers.HasFeedback(uint(atoi))
			if err != nil {
				log.Printf("[HasFeedback] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"hasFeedback": hasFeedback})
		})
	return g
}
