package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func setAuthCookies(c *fiber.Ctx, token, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		UserName string `json:"username"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.UserName == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	accountModel, err := helper.GetAccountByUsername(loginInput.UserName)

	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if accountModel == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_USERNAME, errors.New("username not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, accountModel.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !accountModel.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		AccountId: accountModel.ID,
		Username:  accountModel.Username,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)

	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)

	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, token, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":       accountModel.ID,
			"username": accountModel.Username,
			"role":     accountModel.Role,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		type RefreshTokenRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req RefreshTokenRequest
		if err := c.BodyParser(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no refresh token"))
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	tokenClaim := model.TokenClaim{
		AccountId: uint(claims["accountId"].(float64)),
		Username:  claims["username"].(string),
	}

	newToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefresh, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, newToken, newRefresh)

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: newToken, RefreshToken: newRefresh})
}

func Me(c *fiber.Ctx) error {
	_, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func ChangePassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AdminChangePassword)

	_, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("current password is wrong"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&model.Account{}).Where("id = ?", account.ID).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}

func ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}
	var input ForgotInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email is required", err)
	}

	db := database.DB
	var account model.Account
	if err := db.Where("email = ?", input.Email).First(&account).Error; err != nil {
		// Do not leak which emails exist
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "if the email exists, a reset link was sent"})
	}

	reset := model.PasswordResetToken{
		AccountId: account.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := db.Create(&reset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resetLink := helper.BaseURL() + "/admin/reset-password?token=" + reset.Token
	if err := utils.SendPasswordResetEmail(account.Email, resetLink); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send reset email", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "if the email exists, a reset link was sent"})
}

func ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	var input ResetInput
	if err := c.BodyParser(&input); err != nil || input.Token == "" || input.NewPassword == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token and new password are required", err)
	}
	if len(input.NewPassword) < 6 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at least 6 characters", errors.New("password too short"))
	}

	db := database.DB
	var reset model.PasswordResetToken
	if err := db.Where("token = ? AND used = ?", input.Token, false).First(&reset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Invalid or used reset token", err)
	}
	if time.Now().After(reset.ExpiresAt) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Reset token expired", errors.New("token expired"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&model.Account{}).Where("id = ?", reset.AccountId).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	db.Model(&model.PasswordResetToken{}).Where("id = ?", reset.ID).Update("used", true)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password reset"})
}
