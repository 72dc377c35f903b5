// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"loon-backend/services"
	"loon-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
	Services services.ServiceStore
}

type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"` // "2006-01-02"
	TimeSlot  string `json:"timeSlot" binding:"required"`
}

// CreateBooking books a slot for the authenticated customer. The service name
// and price snapshots are resolved server-side from the catalog at booking
// time.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := accountUUID(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	date, err := utils.ParseBookingDateRaw(req.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	service, err := ctl.Services.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking, err := ctl.Bookings.Create(c.Request.Context(), services.CreateBookingInput{
		ServiceID:   serviceID,
		UserID:      userID,
		Date:        date,
		TimeSlot:    req.TimeSlot,
		Price:       service.Price,
		ServiceName: service.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBooking), errors.Is(err, services.ErrInvalidSlot):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// MyBookings lists the customer's bookings partitioned pending/done, enriched
// with salon details.
func (ctl *BookingController) MyBookings(c *gin.Context) {
	userID, ok := accountUUID(c)
	if !ok {
		return
	}

	bookings, err := ctl.Bookings.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking cancels one of the customer's own pending bookings.
func (ctl *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := accountUUID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := ctl.Bookings.Cancel(c.Request.Context(), bookingID, userID); err != nil {
		respondTransitionError(c, err, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking canceled"})
}

// ApproveBooking marks a pending booking done and triggers the customer
// notification. Only the salon the booking belongs to may approve it.
func (ctl *BookingController) ApproveBooking(c *gin.Context) {
	salonID, ok := accountUUID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := ctl.Bookings.Approve(c.Request.Context(), bookingID, salonID); err != nil {
		respondTransitionError(c, err, "Failed to approve booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
}

func respondTransitionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, services.ErrNotOwner):
		utils.RespondWithError(c, http.StatusForbidden, "Booking belongs to another account")
	case errors.Is(err, services.ErrNotPending):
		utils.RespondWithError(c, http.StatusConflict, "Booking is no longer pending")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}

// accountUUID pulls the authenticated account id out of the request context.
func accountUUID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get("accountId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(accountID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid account ID format")
		return uuid.Nil, false
	}
	return id, true
}
