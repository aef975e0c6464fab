package validators

import (
	"errors"
	"strings"
)

const maxMessageLength = 2000

type messageValidator struct{}

func NewMessageValidator() MessageValidator {
	return &messageValidator{}
}

func (v *messageValidator) ValidateSend(recipientID, content string) error {
	if recipientID == "" {
		return errors.New("recipient is required")
	}
	if strings.TrimSpace(content) == "" {
		return errors.New("message content is required")
	}
	if len(content) > maxMessageLength {
		return errors.New("message content exceeds maximum length")
	}
	return nil
}
