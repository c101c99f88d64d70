package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/jackc/pgx/v5/pgconn"
)

// RegisterUser creates the account unactivated; paying the signup checkout
// flips Activated (see the payment flow).
func RegisterUser(email, password, fullName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, errors.New("email already registered")
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func SaveUser(user *models.User) error {
	return config.DB.Save(user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	user, err := FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

// ActivateUserByEmail marks the account paid-up. Unknown emails are not an
// error: the webhook may fire for checkouts started before signup finished.
func ActivateUserByEmail(email string) error {
	if email == "" {
		return nil
	}
	return config.DB.
		Model(&models.User{}).
		Where("email = ?", email).
		Update("activated", true).Error
}
