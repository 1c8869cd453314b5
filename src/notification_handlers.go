package main

import (
	"log"
	"net/http"
	"strconv"

	"carlink/src/controllers"
	"carlink/src/db"
	"carlink/src/lib/mailer"
	"carlink/src/models"
	"carlink/src/types"

	"github.com/gin-gonic/gin"
)

func notificationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/messages/user/:user_id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("user_id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var messages []models.ClientNotification
			err = db.GetDb().
				Model(&models.ClientNotification{}).
				Where("user_id = ?", atoi).
				Order("created_at DESC").
				Find(&messages).
				Error
			if err != nil {
				log.Printf("[GetMessages] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, messages)
		}).
		PATCH("/messages/:id/read", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			conn := db.GetDb()
			res := conn.
				Model(&models.ClientNotification{}).
				Where("m_id = ?", atoi).
				Update("read", true)
			if res.Error != nil {
				log.Printf("[MarkRead] error: %s\n", res.Error.Error())
				respondError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
				return
			}
			var notif models.ClientNotification
			if err := conn.
				Model(&models.ClientNotification{}).
				Where("m_id = ?", atoi).
				First(&notif).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"message":      "Notification marked as read",
				"notification": notif,
			})
		}).
		PUT("/messages/read", func(ctx *gin.Context) {
			var body struct {
				Read *bool `json:"read"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil || body.Read == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
				return
			}
			err := db.GetDb().
				Model(&models.ClientNotification{}).
				Where("read = ?", false).
				Update("read", *body.Read).
				Error
			if err != nil {
				log.Printf("[MarkAllRead] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
		}).
		POST("/messageconfirm", func(ctx *gin.Context) {
			var body struct {
				UserID    uint   `json:"user_id"`
				BookingID uint   `json:"booking_id"`
				Title     string `json:"title"`
				Message   string `json:"message"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			notif, err := controllers.CreateClientNotification(body.UserID, body.BookingID, body.Title, body.Message)
			if err != nil {
				log.Printf("[CreateClientNotification] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"message": "Message sent successfully",
				"data":    notif,
			})
		}).
		POST("/send-email", func(ctx *gin.Context) {
			var body types.SendInquiryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			reference, err := controllers.SendInquiry(&body)
			if err != nil {
				log.Printf("[SendInquiry] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"message":   "Inquiry sent successfully",
				"reference": reference,
			})
		})
	return g
}

func adminNotificationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/notification", func(ctx *gin.Context) {
			var body struct {
				UserID  uint   `json:"user_id"`
				Title   string `json:"title"`
				Message string `json:"message"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			notif, err := controllers.CreateAdminNotification(body.UserID, body.Title, body.Message)
			if err != nil {
				log.Printf("[CreateAdminNotification] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"message": "Admin notification sent successfully",
				"data":    notif,
			})
		})
	return g
}

func notifyClientRoute(r *gin.Engine) {
	r.POST("/notify-client", func(ctx *gin.Context) {
		var body struct {
			Title       string `json:"title"`
			Message     string `json:"message"`
			ClientEmail string `json:"clientEmail"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		mailer.SendNotif(body.Title, body.Message, body.ClientEmail)
		ctx.String(http.StatusOK, "Notification sent")
	})
}
