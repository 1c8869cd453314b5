package controllers

import (
	"errors"

	"carlink/src/db"
	"carlink/src/models"
	"carlink/src/types"
	"carlink/src/utils"

	"gorm.io/gorm"
)

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	err := db.GetDb().
		Model(&models.User{}).
		Where("id = ?", userID).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Message: "User not found"}
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// UpdateProfile overwrites name, phone and gender; the picture is only
// replaced when a new one was uploaded.
func UpdateProfile(userID uint, name string, phoneNumber string, gender string, picture []byte) (*models.User, error) {
	updates := map[string]any{
		"name":        name,
		"phonenumber": phoneNumber,
		"gender":      gender,
	}
	if len(picture) > 0 {
		if !utils.IsJPEG(picture) {
			return nil, &types.ValidationError{Message: "Only JPEG and JPG files are allowed!"}
		}
		updates["userspfp"] = picture
	}

	conn := db.GetDb()
	res := conn.
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &types.NotFoundError{Message: "User not found"}
	}
	return GetUser(userID)
}

func UploadProfilePicture(userID uint, picture []byte) error {
	if len(picture) == 0 {
		return &types.ValidationError{Message: "Profile picture file is required"}
	}
	if !utils.IsJPEG(picture) {
		return &types.ValidationError{Message: "Only JPEG and JPG files are allowed!"}
	}
	res := db.GetDb().
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("userspfp", picture)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &types.NotFoundError{Message: "User not found"}
	}
	return nil
}

func GetProfilePicture(userID uint) ([]byte, error) {
	var user models.User
	err := db.GetDb().
		Model(&models.User{}).
		Select("userspfp").
		Where("id = ?", userID).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Message: "User not found"}
		}
		return nil, err
	}
	return user.UsersPfp, nil
}
