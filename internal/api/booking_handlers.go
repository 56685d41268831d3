package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"campusparking/internal/entities"
	"campusparking/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Timestamp layouts accepted on the wire. RFC 3339 first; the bare local
// form is what the campus kiosk clients send.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type BookingHandler struct {
	Service  *service.BookingService
	validate *validator.Validate
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Service:  svc,
		validate: validator.New(),
	}
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	parkedAt, err := parseTimestamp(req.ParkedAt)
	if err != nil {
		http.Error(w, "Invalid parked_at", http.StatusBadRequest)
		return
	}
	parkedTill, err := parseTimestamp(req.ParkedTill)
	if err != nil {
		http.Error(w, "Invalid parked_till", http.StatusBadRequest)
		return
	}
	if !parkedTill.After(parkedAt) {
		http.Error(w, "parked_till must be after parked_at", http.StatusBadRequest)
		return
	}

	ticket, err := h.Service.Book(entities.BookingRequest{
		LotNo:         req.SlotNo,
		RenterName:    req.Name,
		VehicleNumber: req.VehicleNumber,
		ParkedAt:      parkedAt,
		ParkedTill:    parkedTill,
		RenterEmail:   req.Email,
		RenterPhone:   req.Phone,
	}, r.Header.Get("Idempotency-Key"))
	if err != nil {
		writeServiceError(w, err, "Could not create booking")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BookResponse{
		SlotNo:        ticket.LotNo,
		Name:          ticket.RenterName,
		VehicleNumber: ticket.VehicleNumber,
		ParkedTill:    ticket.ParkedTill.Format(time.RFC3339),
		BookingCode:   ticket.Code,
		QRPNGBase64:   ticket.QRPNGBase64,
	})
}

func (h *BookingHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	parkedTill, err := parseTimestamp(req.ParkedTill)
	if err != nil {
		http.Error(w, "Invalid parked_till", http.StatusBadRequest)
		return
	}

	matched, err := h.Service.Validate(entities.ValidateRequest{
		LotNo:         req.SlotNo,
		RenterName:    req.Name,
		VehicleNumber: req.VehicleNumber,
		ParkedTill:    parkedTill,
	})
	if err != nil {
		writeServiceError(w, err, "Database error")
		return
	}

	resp := ValidateResponse{Status: "Failed", Message: "Invalid Ticket"}
	if matched {
		resp = ValidateResponse{Status: "Success", Message: "Valid Ticket"}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *BookingHandler) Release(w http.ResponseWriter, r *http.Request) {
	lotNo := mux.Vars(r)["slot_no"]
	if err := h.Service.Release(lotNo); err != nil {
		writeServiceError(w, err, "Could not release slot")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Slot released"})
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
