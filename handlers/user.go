package handlers

import (
	"net/http"

	"calmora/models"
	"calmora/services/user"
	"calmora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes patient account endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler creates a patient account.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var input models.UserRegistrationData
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.RegisterUser(input)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler signs a patient in.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserByIDHandler returns the authenticated patient's own account.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString("userID") {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "cannot access another account")
		return
	}

	userRec, err := h.Service.GetUserByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// UpdateUserHandler applies profile changes to the authenticated account.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var input models.UserUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.GetString("userID")

	userRec, err := h.Service.UpdateUser(input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// UpdateUserPasswordHandler rotates the authenticated patient's password.
func (h *UserHandler) UpdateUserPasswordHandler(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateUserPassword(c.GetString("userID"), input.CurrentPassword, input.NewPassword); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "password update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

// DeleteUserHandler removes the authenticated patient's account.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.GetString("userID")
	if err := h.Service.DeleteUser(id); err != nil {
		zap.L().Error("Failed to delete user", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "delete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "account deleted"})
}

// RevokeUserAuthTokenHandler signs the patient out everywhere.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	if err := h.Service.RevokeUserAuthToken(c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "revoke failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "token revoked"})
}
