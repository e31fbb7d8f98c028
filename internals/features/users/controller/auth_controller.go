package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	userDTO "absensiku_backend/internals/features/users/dto"
	userModel "absensiku_backend/internals/features/users/model"
	helper "absensiku_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

const tokenTTL = 24 * time.Hour

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var u userModel.UserModel
	err := h.DB.Where("user_username = ? AND user_is_active = TRUE", req.Username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa akun")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":       u.UserID.String(),
		"username": u.UserUsername,
		"role":     u.UserRole,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	if u.UserType != nil {
		claims["user_type"] = *u.UserType
	}
	if u.UserPersonID != nil {
		claims["person_id"] = u.UserPersonID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	resp := userDTO.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
		UserID:      u.UserID,
		Username:    u.UserUsername,
		Role:        u.UserRole,
		UserType:    u.UserType,
		PersonID:    u.UserPersonID,
	}
	return helper.JsonOK(c, "Login berhasil", resp)
}
