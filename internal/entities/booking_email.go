package entities

type BookingEmailData struct {
	RenterName          string
	BookingCode         string
	LotNo               string
	VehicleNumber       string
	ParkedAtFormatted   string
	ParkedTillFormatted string
	CurrentYear         int
}
