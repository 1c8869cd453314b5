package main

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"carlink/src/controllers"
	"carlink/src/types"

	"github.com/gin-gonic/gin"
)

func profileHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/user/:id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			user, err := controllers.GetUser(uint(atoi))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		PUT("/profile/change-password/:id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var body types.ChangePasswordRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			if err := controllers.ChangePassword(uint(atoi), body.CurrentPassword, body.NewPassword); err != nil {
				log.Printf("[ChangePassword] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
		}).
		PUT("/profile/update/:id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var picture []byte
			if fileHeader, err := ctx.FormFile("userspfp"); err == nil {
				file, err := fileHeader.Open()
				if err != nil {
					respondError(ctx, err)
					return
				}
				defer file.Close()
				picture, err = io.ReadAll(file)
				if err != nil {
					respondError(ctx, err)
					return
				}
			}
			user, err := controllers.UpdateProfile(
				uint(atoi),
				ctx.PostForm("name"),
				ctx.PostForm("phonenumber"),
				ctx.PostForm("gender"),
				picture,
			)
			if err != nil {
				log.Printf("[UpdateProfile] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		POST("/profile/upload-picture/:id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			fileHeader, err := ctx.FormFile("userspfp")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Profile picture file is required"})
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				respondError(ctx, err)
				return
			}
			defer file.Close()
			picture, err := io.ReadAll(file)
			if err != nil {
				respondError(ctx, err)
				return
			}
			if err := controllers.UploadProfilePicture(uint(atoi), picture); err != nil {
				log.Printf("[UploadProfilePicture] error: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Profile picture updated successfully"})
		}).
		GET("/profilepicture/:id", func(ctx *gin.Context) {
			atoi, err := strconv.Atoi(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			picture, err := controllers.GetProfilePicture(uint(atoi))
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Data(http.StatusOK, "image/jpeg", picture)
		})
	return g
}
