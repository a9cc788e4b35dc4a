package v1

import (
	"time"

	"github.com/school-central/centralserver/pkg/types"
)

type URIMonth struct {
	SchoolID uint64 `uri:"schoolId" binding:"required" example:"4"`        // ID of the school
	Year     int    `uri:"year" binding:"required" example:"2024"`         // Year of the reporting month
	Month    int    `uri:"month" binding:"required,min=1,max=12" example:"2"` // Month of the reporting month
}

// month returns the reporting month the URI refers to.
func (u URIMonth) month() types.Month {
	return types.NewMonth(u.Year, time.Month(u.Month))
}

type URIDay struct {
	URIMonth
	Day int `uri:"day" binding:"required,min=1,max=31" example:"15"` // Day of the month the voucher is filed for
}

// date returns the voucher date the URI refers to. It is an error when
// the day does not exist in the month, e.g. February 30.
func (u URIDay) date() (time.Time, error) {
	date := u.month().Day(u.Day)
	if !u.month().Contains(date) {
		return time.Time{}, errDayInvalid
	}

	return date, nil
}

type VoucherQueryFilter struct {
	LinkedCategory string `form:"linked_category"` // Only return vouchers linked to this liquidation report category
}
