package handlers

import (
	"net/http"

	"calmora/services/message"
	"calmora/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler exposes patient-therapist messaging endpoints.
type MessageHandler struct {
	Service message.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(svc message.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

// SendPatientMessageHandler sends a message from the authenticated patient.
func (h *MessageHandler) SendPatientMessageHandler(c *gin.Context) {
	var input struct {
		TherapistID string `json:"therapistId" binding:"required"`
		Body        string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	msg, err := h.Service.Send(c.GetString("userID"), input.TherapistID, "patient", input.Body)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to send message", err.Error())
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// SendTherapistMessageHandler sends a message from the authenticated therapist.
func (h *MessageHandler) SendTherapistMessageHandler(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
		Body   string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	msg, err := h.Service.Send(input.UserID, c.GetString("therapistID"), "therapist", input.Body)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to send message", err.Error())
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetPatientConversationHandler lists the authenticated patient's thread
// with one therapist.
func (h *MessageHandler) GetPatientConversationHandler(c *gin.Context) {
	messages, err := h.Service.GetConversation(c.GetString("userID"), c.Param("therapistID"), "patient")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetTherapistConversationHandler lists the authenticated therapist's
// thread with one patient.
func (h *MessageHandler) GetTherapistConversationHandler(c *gin.Context) {
	messages, err := h.Service.GetConversation(c.Param("userID"), c.GetString("therapistID"), "therapist")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
