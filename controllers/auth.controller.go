package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techstore-admin/auth"
	"techstore-admin/middleware"
	"techstore-admin/models"
)

// Login menangani proses login dan mengembalikan user beserta token.
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := ctrl.Auth.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrUnauthorized) {
		c.Status(http.StatusUnauthorized)
		return
	}
	if err != nil {
		ctrl.Log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Logout menghapus token sesi saat ini.
func (ctrl *Controller) Logout(c *gin.Context) {
	ctrl.Auth.Logout(c.GetString(middleware.TokenKey))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me mengembalikan user dari sesi saat ini.
func (ctrl *Controller) Me(c *gin.Context) {
	user, ok := c.Get(middleware.UserKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}
