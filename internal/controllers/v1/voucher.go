package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/school-central/centralserver/internal/httperror"
	"github.com/school-central/centralserver/internal/httputil"
	"github.com/school-central/centralserver/internal/models"
)

// RegisterVoucherRoutes registers the routes for disbursement vouchers
// with the RouterGroup that is passed.
func RegisterVoucherRoutes(r *gin.RouterGroup) {
	// All vouchers of a reporting month
	{
		r.OPTIONS("/:schoolId/:year/:month", OptionsVoucherMonth)
		r.GET("/:schoolId/:year/:month", GetVouchersForMonth)
	}

	// A single voucher, identified by its day
	{
		r.OPTIONS("/:schoolId/:year/:month/:day", OptionsVoucherDay)
		r.GET("/:schoolId/:year/:month/:day", GetVoucher)
		r.POST("/:schoolId/:year/:month/:day", CreateOrUpdateVoucher)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Disbursement Vouchers
// @Success		204
// @Param			schoolId	path	uint	true	"ID of the school"
// @Param			year		path	int		true	"Year of the reporting month"
// @Param			month		path	int		true	"Month of the reporting month"
// @Router			/api/v1/reports/disbursement-voucher/{schoolId}/{year}/{month} [options]
func OptionsVoucherMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Disbursement Vouchers
// @Success		204
// @Param			schoolId	path	uint	true	"ID of the school"
// @Param			year		path	int		true	"Year of the reporting month"
// @Param			month		path	int		true	"Month of the reporting month"
// @Param			day			path	int		true	"Day the voucher is filed for"
// @Router			/api/v1/reports/disbursement-voucher/{schoolId}/{year}/{month}/{day} [options]
func OptionsVoucherDay(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create or update a voucher
// @Description	Creates the disbursement voucher for the day or replaces the existing one. Line items, accounting entries and certifiers are replaced wholesale.
// @Tags			Disbursement Vouchers
// @Accept			json
// @Produce		json
// @Success		200			{object}	Voucher
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			schoolId	path		uint			true	"ID of the school"
// @Param			year		path		int				true	"Year of the reporting month"
// @Param			month		path		int				true	"Month of the reporting month"
// @Param			day			path		int				true	"Day the voucher is filed for"
// @Param			voucher		body		VoucherEditable	true	"Voucher"
// @Router			/api/v1/reports/disbursement-voucher/{schoolId}/{year}/{month}/{day} [post]
func CreateOrUpdateVoucher(c *gin.Context) {
	var uri URIDay
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	date, err := uri.date()
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	var editable VoucherEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	// The upsert is keyed by the URL path, not the request body
	voucher := editable.model()
	voucher.SchoolID = uri.SchoolID
	voucher.Date = date
	voucher.Parent = uri.month()

	saved, err := voucher.Upsert(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newVoucher(saved))
}

// @Summary		Get voucher
// @Description	Returns the disbursement voucher filed for a specific day
// @Tags			Disbursement Vouchers
// @Produce		json
// @Success		200			{object}	Voucher
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			schoolId	path		uint	true	"ID of the school"
// @Param			year		path		int		true	"Year of the reporting month"
// @Param			month		path		int		true	"Month of the reporting month"
// @Param			day			path		int		true	"Day the voucher is filed for"
// @Router			/api/v1/reports/disbursement-voucher/{schoolId}/{year}/{month}/{day} [get]
func GetVoucher(c *gin.Context) {
	var uri URIDay
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	date, err := uri.date()
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	voucher, err := models.GetVoucher(models.DB, uri.SchoolID, date)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newVoucher(voucher))
}

// @Summary		Get vouchers for a month
// @Description	Returns all disbursement vouchers of a reporting month, optionally filtered by linked liquidation report category
// @Tags			Disbursement Vouchers
// @Produce		json
// @Success		200				{array}		Voucher
// @Failure		400				{object}	httperror.Error
// @Failure		500				{object}	httperror.Error
// @Param			schoolId		path		uint	true	"ID of the school"
// @Param			year			path		int		true	"Year of the reporting month"
// @Param			month			path		int		true	"Month of the reporting month"
// @Param			linked_category	query		string	false	"Only return vouchers linked to this category"
// @Router			/api/v1/reports/disbursement-voucher/{schoolId}/{year}/{month} [get]
func GetVouchersForMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	var filter VoucherQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	vouchers, err := models.GetVouchersForMonth(models.DB, uri.SchoolID, uri.month(), filter.LinkedCategory)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]Voucher, 0, len(vouchers))
	for _, voucher := range vouchers {
		data = append(data, newVoucher(voucher))
	}

	c.JSON(http.StatusOK, data)
}
