package economy

import "errors"

var (
	ErrInsufficientMaterials = errors.New("insufficient materials")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInventoryFull         = errors.New("inventory full")
	ErrInvalidSlot           = errors.New("invalid slot")
	ErrRecipeLocked          = errors.New("recipe locked")
	ErrUnknownItem           = errors.New("unknown item")
	ErrInvalidAmount         = errors.New("invalid amount")
)
