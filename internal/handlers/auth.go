package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/store"
	"github.com/taskhub-dev/taskhub/internal/types"
	"github.com/taskhub-dev/taskhub/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Please enter name, email, and password"})
		return
	}

	if len(req.Password) < minPasswordLength {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Password must be at least 6 characters"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during registration"})
		return
	}

	newUser := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	// The unique email index is the single duplicate check; no pre-check
	// query.
	if err := h.users.Create(&newUser, time.Now()); err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists with this email"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during registration"})
		return
	}

	token, err := h.tokens.Issue(newUser.ID, newUser.Email, newUser.Name)

	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during registration"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:    newUser.ID,
			Name:  newUser.Name,
			Email: newUser.Email,
		},
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	if req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Please enter email and password"})
		return
	}

	user, err := h.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same message as a password mismatch so account existence
			// never leaks.
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during login"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.Name)

	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during login"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// ChangePassword re-hashes and persists a new password. No new token is
// issued; the caller is expected to require a fresh login.
func (h *Handler) ChangePassword(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authenticated"})
		return
	}

	var req ChangePasswordRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Please provide current and new passwords."})
		return
	}

	if len(req.NewPassword) < minPasswordLength {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "New password must be at least 6 characters."})
		return
	}

	if req.CurrentPassword == req.NewPassword {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "New password cannot be the same as the current password."})
		return
	}

	user, err := h.users.FindByID(currentUser.ID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found."})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during password change."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Incorrect current password."})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash new password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during password change."})
		return
	}

	if err := h.users.UpdatePasswordHash(user.ID, string(passwordHash)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found."})
			return
		}
		log.Printf("Failed to update password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during password change."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "Password changed successfully."})
}
