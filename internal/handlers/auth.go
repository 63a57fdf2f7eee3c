package handlers

import (
	"errors"
	"fmt"

	"github.com/coachpeter/coach-peter-api/internal/database"
	"github.com/coachpeter/coach-peter-api/internal/middleware"
	"github.com/coachpeter/coach-peter-api/internal/models"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Username and password are required")
	}

	// Check if user exists
	var existing models.User
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("User '%s' already exists", req.Username))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
	}
	if err := h.db.Create(&user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	log.Infof("user %q created", user.Username)
	return success(c, fiber.StatusCreated, fiber.Map{
		"message": fmt.Sprintf("User '%s' created successfully", user.Username),
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Username and password are required")
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := middleware.GenerateToken(h.jwtSecret, user.ID, user.Username)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("User '%s' logged in successfully", user.Username),
		"token":   token,
	})
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.NewPassword == "" {
		return fail(c, fiber.StatusBadRequest, "New password is required")
	}

	userID := middleware.GetUserID(c)
	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, fiber.StatusNotFound, "User not found")
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.Password = string(hashedPassword)
	if err := h.db.Save(&user).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": "Password changed successfully",
	})
}

func (h *Handler) ResetUsers(c *fiber.Ctx) error {
	log.Warn("resetting users table")
	if err := database.ResetUsers(h.db); err != nil {
		return fmt.Errorf("reset users: %w", err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"message": "Users table recreated successfully",
	})
}
