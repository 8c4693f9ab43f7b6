package entity

// User is an RFID card holder with a prepaid wallet.
type User struct {
	RFIDID        string
	UserName      string
	VehicleNo     string
	WalletBalance float64
	Contact       string
	Email         string
	IsActive      bool
	CreatedAt     int64
}
