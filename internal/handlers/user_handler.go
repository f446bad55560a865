package handlers

import (
	"errors"
	"net/http"

	"github.com/CachoMX/partnership-kpi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

// CreateUser provisions a dashboard account; closer and setter accounts get
// a linked rep row.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	user, err := h.userService.CreateUser(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Name == "" || req.Email == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := h.userService.UpdateUser(req.UserID, req.Name, req.Email, req.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId"})
		return
	}

	if err := h.userService.DeleteUser(req.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CleanupOrphaned drops rep rows whose email no longer matches any account.
func (h *UserHandler) CleanupOrphaned(c *gin.Context) {
	removed, err := h.userService.CleanupOrphanedReps()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}

// LookupRole maps a login email to its role and linked rep id. Unknown or
// unlinked emails get a null-role 404, which the login page treats as "no
// dashboard for you" rather than a failure.
func (h *UserHandler) LookupRole(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	info, err := h.userService.LookupRole(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "role": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":     info.Role,
		"name":     info.Name,
		"closerId": info.CloserID,
		"setterId": info.SetterID,
	})
}
