package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"loon-backend/cache"
	"loon-backend/config"
	"loon-backend/models"
	"loon-backend/utils"
)

type ProfileController struct {
	Cache *cache.ServiceCache
}

// UpdateSalonProfileInput defines the expected JSON structure for updating the
// salon profile; absent fields are left untouched.
type UpdateSalonProfileInput struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Price        *float64 `json:"price"`
	Email        *string  `json:"email"`
	ProfileImage *string  `json:"profileImage"`
}

func (ctl *ProfileController) GetSalonProfile(c *gin.Context) {
	salonID, ok := accountUUID(c)
	if !ok {
		return
	}

	var salon models.Service
	if err := config.DB.First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (ctl *ProfileController) UpdateSalonProfile(c *gin.Context) {
	salonID, ok := accountUUID(c)
	if !ok {
		return
	}

	var input UpdateSalonProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var salon models.Service
	if err := config.DB.First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.Category != nil {
		salon.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must be non-negative")
			return
		}
		salon.Price = *input.Price
	}
	if input.Email != nil {
		salon.Email = *input.Email
	}
	if input.ProfileImage != nil {
		salon.ProfileImage = *input.ProfileImage
	}

	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	// Bookings keep their snapshots; only the cached live details go stale.
	ctl.Cache.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, salon)
}

// DeleteSalonAccount removes the salon's service row and its bookings.
func (ctl *ProfileController) DeleteSalonAccount(c *gin.Context) {
	salonID, ok := accountUUID(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", salonID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, "id = ?", salonID).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	ctl.Cache.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
