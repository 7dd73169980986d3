package handlers

import (
	"net/http"

	"calmora/models"
	"calmora/services/therapist"
	"calmora/utils"

	"github.com/gin-gonic/gin"
)

// TherapistHandler exposes therapist account and directory endpoints.
type TherapistHandler struct {
	Service therapist.TherapistService
}

// NewTherapistHandler creates a new TherapistHandler.
func NewTherapistHandler(svc therapist.TherapistService) *TherapistHandler {
	return &TherapistHandler{Service: svc}
}

// RegisterTherapistHandler onboards a therapist.
func (h *TherapistHandler) RegisterTherapistHandler(c *gin.Context) {
	var input models.TherapistRegistrationData
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.RegisterTherapist(input)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateTherapistHandler signs a therapist in.
func (h *TherapistHandler) AuthenticateTherapistHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.AuthenticateTherapist(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchTherapistsHandler lists the public directory.
func (h *TherapistHandler) SearchTherapistsHandler(c *gin.Context) {
	specialty := c.Query("specialty")
	name := c.Query("name")

	views, err := h.Service.SearchTherapists(specialty, name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapists": views})
}

// GetTherapistProfileHandler returns one public profile.
func (h *TherapistHandler) GetTherapistProfileHandler(c *gin.Context) {
	view, err := h.Service.GetTherapistProfile(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "therapist not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateTherapistHandler applies profile changes to the authenticated
// therapist. Only supplied fields are written.
func (h *TherapistHandler) UpdateTherapistHandler(c *gin.Context) {
	var input models.TherapistUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.GetString("therapistID")

	rec, err := h.Service.UpdateTherapist(input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetScheduleHandler lists the authenticated therapist's bookings for one
// date (query param "date", defaulting to tomorrow).
func (h *TherapistHandler) GetScheduleHandler(c *gin.Context) {
	schedule, err := h.Service.GetSchedule(c.GetString("therapistID"), c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to fetch schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": schedule})
}

// DeleteTherapistHandler removes the authenticated therapist's account.
func (h *TherapistHandler) DeleteTherapistHandler(c *gin.Context) {
	if err := h.Service.DeleteTherapist(c.GetString("therapistID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "delete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "account deleted"})
}

// RevokeTherapistAuthTokenHandler signs the therapist out everywhere.
func (h *TherapistHandler) RevokeTherapistAuthTokenHandler(c *gin.Context) {
	if err := h.Service.RevokeTherapistAuthToken(c.GetString("therapistID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "revoke failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "token revoked"})
}

// GetPatientRosterHandler lists the patients who have booked with the
// authenticated therapist.
func (h *TherapistHandler) GetPatientRosterHandler(c *gin.Context) {
	roster, err := h.Service.GetPatientRoster(c.GetString("therapistID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch patients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": roster})
}
