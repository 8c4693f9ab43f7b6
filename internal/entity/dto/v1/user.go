package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var rfidRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

type User struct {
	RFIDID        string  `json:"rfid_id" example:"RFID001"`
	UserName      string  `json:"user_name" example:"John Doe"`
	VehicleNo     string  `json:"vehicle_no" example:"MH-12-AB-1234"`
	WalletBalance float64 `json:"wallet_balance" example:"500"`
	Contact       string  `json:"contact,omitempty" example:"+919876543210"`
	Email         string  `json:"email,omitempty" example:"john@example.com"`
}

// RFIDParam binds the :rfid path segment forwarded to the backend.
type RFIDParam struct {
	RFID string `uri:"rfid" binding:"required,rfid"`
}

// IDParam binds an opaque :id path segment forwarded to the backend.
type IDParam struct {
	ID string `uri:"id" binding:"required,rfid"`
}

// ValidateRFID accepts tag ids made of letters, digits, hyphens and underscores.
func ValidateRFID(fl validator.FieldLevel) bool {
	return rfidRegex.MatchString(fl.Field().String())
}
