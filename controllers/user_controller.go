package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/models"
	"github.com/sekenkampus/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active blocked"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Campus   string `json:"campus" binding:"required"`
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetAllUsers godoc
// @Summary List every account
// @Description Admin view of all registered users
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    users,
		Meta:    gin.H{"count": len(users)},
	})
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user})
}

// UpdateUserStatus godoc
// @Summary Block or unblock an account
// @Description Admin flips a user's account status; admin accounts cannot be blocked
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param status body UpdateUserStatusRequest true "Target status"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/status [put]
func (uc *UserController) UpdateUserStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot update admin status"})
		return
	}

	user.Status = req.Status
	if err := uc.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user status"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"id": user.ID, "name": user.Name, "email": user.Email, "status": user.Status},
		Message: "User status updated to " + user.Status,
	})
}

// DeleteAccount soft-deletes the caller's own account and revokes its
// refresh tokens.
func (uc *UserController) DeleteAccount(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Account deleted successfully",
	})
}

// CreateAdminAccount godoc
// @Summary Create an admin account
// @Description Admin provisions another admin account
// @Tags users
// @Accept json
// @Produce json
// @Param admin body CreateAdminRequest true "Admin account details"
// @Success 201 {object} map[string]interface{}
// @Router /users/admin [post]
func (uc *UserController) CreateAdminAccount(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}
	hashedStr := string(hashed)

	admin := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: &hashedStr,
		Phone:    req.Phone,
		Address:  req.Address,
		Campus:   req.Campus,
		Role:     models.RoleAdmin,
		Status:   models.AccountActive,
	}

	if err := uc.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    gin.H{"id": admin.ID, "name": admin.Name, "email": admin.Email, "role": admin.Role},
		Message: "Admin account created successfully",
	})
}
