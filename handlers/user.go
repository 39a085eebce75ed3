package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	userSvc "yungwing/services/user"
	"yungwing/utils"
)

func userError(c *gin.Context, err error) {
	if errors.Is(err, userSvc.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// GetProfileHandler returns the authenticated member's record.
func GetProfileHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetProfile(currentUserID(c))
		if err != nil {
			userError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateProfileHandler applies a partial update to the member's
// profile.
func UpdateProfileHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     *string `json:"name"`
			Email    *string `json:"email"`
			Gender   *string `json:"gender"`
			Birthday *string `json:"birthday"` // "YYYY-MM-DD"
			Address  *string `json:"address"`
			Avatar   *string `json:"avatar"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		req := userSvc.UpdateProfileRequest{
			Name:    input.Name,
			Email:   input.Email,
			Gender:  input.Gender,
			Address: input.Address,
			Avatar:  input.Avatar,
		}
		if input.Birthday != nil {
			birthday, err := time.Parse(utils.DateLayout, *input.Birthday)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthday, want YYYY-MM-DD"})
				return
			}
			req.Birthday = &birthday
		}

		u, err := svc.UpdateProfile(currentUserID(c), req)
		if err != nil {
			userError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// GetStatsHandler summarises the member's activity.
func GetStatsHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(currentUserID(c))
		if err != nil {
			userError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// PointsHistoryHandler pages the member's loyalty ledger.
func PointsHistoryHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		entries, pagination, err := svc.PointsHistory(currentUserID(c), c.Query("type"), page, limit)
		if err != nil {
			userError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"points": entries, "pagination": pagination})
	}
}
