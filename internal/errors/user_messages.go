package errors

// User-friendly error messages
const (
	MsgInvalidParameter   = "The provided parameters are invalid. Please check your input and try again."
	MsgInvalidCurrency    = "The currency code is not supported."
	MsgInvalidRate        = "The exchange rate must be a positive number."
	MsgInvalidAmount      = "The amount must be a non-negative number."
	MsgRateNotFound       = "No exchange rate is available for this currency pair."
	MsgPropertyNotFound   = "Property not found."
	MsgMessageNotFound    = "Message not found."
	MsgNotAuthorized      = "You are not allowed to perform this action."
	MsgServiceUnavailable = "We're unable to process your request right now. Please try again in a few minutes."
	MsgRateLimited        = "You're sending requests too quickly! Please wait a moment and try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
