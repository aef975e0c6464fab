package handlers

import (
	"net/http"

	"easyrent-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents the send message payload
type SendMessageRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Property  string `json:"property,omitempty"`
	Content   string `json:"content" binding:"required"`
}

// SendMessage godoc
// @Summary Send a message to another user
// @Description Send a message, optionally tied to a property listing
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body SendMessageRequest true "Message data"
// @Security BearerAuth
// @Success 201 {object} models.Message
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.SendMessage(c.Request.Context(), c.GetString("user_id"), req.Recipient, req.Property, req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// GetConversations godoc
// @Summary List the authenticated user's conversations
// @Description One entry per dialog, newest first, with peer details and unread count
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ConversationSummary
// @Failure 401 {object} map[string]string
// @Router /messages [get]
func (h *MessageHandler) GetConversations(c *gin.Context) {
	summaries, err := h.messageService.ListConversations(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

// GetConversation godoc
// @Summary Get the dialog with another user
// @Description Returns the full message history and marks received messages as read
// @Tags Messages
// @Produce json
// @Param userId path string true "Peer user ID"
// @Security BearerAuth
// @Success 200 {array} models.Message
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /messages/{userId} [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	messages, err := h.messageService.GetConversation(c.Request.Context(), c.GetString("user_id"), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": messages})
}
