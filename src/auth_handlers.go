package main

import (
	"log"
	"net/http"

	"carlink/src/controllers"
	"carlink/src/types"

	"github.com/gin-gonic/gin"
)

func authHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/signin", func(ctx *gin.Context) {
			var body types.SignInRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			if body.Email == "" || body.Password == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
				return
			}
			user, token, err := controllers.SignIn(body.Email, body.Password)
			if err != nil {
				log.Printf("[SignIn] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"message": "Signin successful",
				"user":    user,
				"token":   token,
			})
		}).
		POST("/signup", func(ctx *gin.Context) {
			var body types.SignUpRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			userID, err := controllers.Register(&body)
			if err != nil {
				log.Printf("[Register] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"message": "User registered successfully",
				"user_id": userID,
			})
		}).
		POST("/send-otp", func(ctx *gin.Context) {
			var body struct {
				Email string `json:"email"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			if body.Email == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
				return
			}
			if err := controllers.RequestOtp(body.Email); err != nil {
				log.Printf("[RequestOtp] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
		}).
		POST("/validate-otp", func(ctx *gin.Context) {
			var body struct {
				Email string `json:"email"`
				Otp   string `json:"otp"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			if body.Email == "" || body.Otp == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email and OTP are required"})
				return
			}
			if err := controllers.ValidateOtp(body.Email, body.Otp); err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "OTP validated successfully"})
		}).
		POST("/client/forgot-password", func(ctx *gin.Context) {
			var body struct {
				Email string `json:"email"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			if err := controllers.RequestPasswordReset(body.Email); err != nil {
				log.Printf("[RequestPasswordReset] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Password reset instructions sent to your email"})
		}).
		POST("/reset-password", func(ctx *gin.Context) {
			var body types.ResetPasswordRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			token := body.Token
			if token == "" {
				token = body.ResetToken
			}
			if token == "" || body.NewPassword == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Reset token and new password are required"})
				return
			}
			if err := controllers.ResetPassword(token, body.NewPassword); err != nil {
				log.Printf("[ResetPassword] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Password successfully reset"})
		})
	return g
}
