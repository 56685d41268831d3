package api

import (
	"errors"
	"net/http"

	apperrors "campusparking/internal/errors"
)

// httpErrorFor maps domain sentinels to their HTTP form. Anything that is
// not a sentinel is a storage failure and gets the handler's fallback
// message with a 500.
func httpErrorFor(err error, fallback string) *apperrors.HTTPError {
	switch {
	case errors.Is(err, apperrors.ErrSlotNotFound), errors.Is(err, apperrors.ErrSlotUnavailable):
		return apperrors.NewHTTPError(http.StatusBadRequest, "Slot not available")
	case errors.Is(err, apperrors.ErrBookingNotFound):
		return apperrors.NewHTTPError(http.StatusNotFound, "No active booking for slot")
	default:
		return apperrors.NewHTTPError(http.StatusInternalServerError, fallback)
	}
}

func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	httpErr := httpErrorFor(err, fallback)
	http.Error(w, httpErr.Message, httpErr.Code)
}
