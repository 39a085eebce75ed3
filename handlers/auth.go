package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userSvc "yungwing/services/user"
)

// RegisterHandler creates a new member account.
func RegisterHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name" binding:"required"`
			Phone    string `json:"phone" binding:"required"`
			Password string `json:"password" binding:"required"`
			Email    string `json:"email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.Register(userSvc.RegisterRequest{
			Name:     input.Name,
			Phone:    input.Phone,
			Password: input.Password,
			Email:    input.Email,
		})
		if err != nil {
			if errors.Is(err, userSvc.ErrPhoneTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler authenticates by phone and password.
func LoginHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Phone    string `json:"phone" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.Authenticate(input.Phone, input.Password)
		if err != nil {
			if errors.Is(err, userSvc.ErrAccountDisabled) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": userSvc.ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LineLoginHandler signs a member in via their LINE identity.
func LineLoginHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			LineUserID  string `json:"lineUserId" binding:"required"`
			DisplayName string `json:"displayName"`
			Avatar      string `json:"avatar"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.LineLogin(input.LineUserID, input.DisplayName, input.Avatar)
		if err != nil {
			if errors.Is(err, userSvc.ErrAccountDisabled) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
