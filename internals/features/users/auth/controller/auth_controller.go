package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceService "hrbuddy_backend/internals/features/attendance/service"
	authHelper "hrbuddy_backend/internals/features/users/auth/helper"
	authService "hrbuddy_backend/internals/features/users/auth/service"
	"hrbuddy_backend/internals/features/users/user/dto"
	"hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dateOfJoining, err := helper.ParseDate(req.DateOfJoining)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date_of_joining format, expected YYYY-MM-DD")
	}

	passwordHash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := req.ToModel(dateOfJoining)
	user.Password = passwordHash

	if err := ac.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusBadRequest, "User already exists")
		}
		log.Println("[ERROR] Failed to create user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	// opportunistic backfill, never blocks or fails the registration
	if user.Role == "employee" {
		attendanceService.BackfillAsync(ac.DB, user)
	}

	token, err := authService.GenerateToken(user)
	if err != nil {
		log.Println("[ERROR] Token generation failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	log.Printf("[SUCCESS] Registered user %s (%s)", user.FullName, user.Email)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", fiber.Map{
		"user":  dto.ToUserResponse(user),
		"token": token,
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ac.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if user.Role == "employee" {
		attendanceService.BackfillAsync(ac.DB, &user)
	}

	token, err := authService.GenerateToken(&user)
	if err != nil {
		log.Println("[ERROR] Token generation failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"user":  dto.ToUserResponse(&user),
		"token": token,
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	var user model.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "User profile fetched successfully", dto.ToUserResponse(&user))
}
