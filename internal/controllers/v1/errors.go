package v1

import (
	"errors"
	"net/http"

	"github.com/school-central/centralserver/internal/models"
)

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Voucher errors
var (
	errDayInvalid = errors.New("the specified day does not exist in the requested month")
)
