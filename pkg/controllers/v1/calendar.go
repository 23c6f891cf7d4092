package v1

import (
	"fmt"
	"net/http"

	"github.com/duecal/backend/internal/types"
	"github.com/duecal/backend/pkg/calendar"
	"github.com/duecal/backend/pkg/httputil"
	"github.com/duecal/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterCalendarRoutes registers the routes for the calendar with
// the RouterGroup that is passed.
func (co Controller) RegisterCalendarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCalendar)
	r.GET("", co.GetCalendar)

	r.OPTIONS("/days/:date", co.OptionsCalendarDay)
	r.GET("/days/:date", co.GetCalendarDay)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/calendar [options]
func (co Controller) OptionsCalendar(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Param			date	path	string	true	"The day in YYYY-MM-DD format"
// @Router			/v1/calendar/days/{date} [options]
func (co Controller) OptionsCalendarDay(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get calendar
// @Description	Returns the events of a month, grouped by day, with the status and statistics of every day
// @Tags			Calendar
// @Produce		json
// @Success		200			{object}	CalendarResponse
// @Failure		400			{object}	CalendarResponse
// @Failure		500			{object}	CalendarResponse
// @Param			month		query		string		false	"The month in YYYY-MM format. Defaults to the current month."
// @Param			type		query		[]string	false	"Filter by transaction type. Can be repeated."
// @Param			category	query		[]string	false	"Filter by category ID. Can be repeated."
// @Param			status		query		[]string	false	"Filter by transaction status. Can be repeated."
// @Param			account		query		string		false	"Filter by account ID"
// @Router			/v1/calendar [get]
func (co Controller) GetCalendar(c *gin.Context) {
	var query CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	if err := validateFilterIDs(query.Filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(co.Calendar.Now())
	}

	cal, err := co.Calendar.Month(c.Request.Context(), month, query.Filter)
	if err != nil {
		s := err.Error()
		c.JSON(calendarStatus(err), CalendarResponse{
			Error: &s,
		})
		return
	}

	base := c.GetString(string(models.DBContextURL)) + "/v1/calendar"
	params := c.Request.URL.Query()

	c.JSON(http.StatusOK, CalendarResponse{
		Data: &Calendar{
			Calendar: cal,
			Index:    cal.Index.Map(),
			Links: CalendarLinks{
				Self:     withQuery(base, params, month.String()),
				Previous: withQuery(base, params, month.AddDate(0, -1).String()),
				Next:     withQuery(base, params, month.AddDate(0, 1).String()),
			},
		},
	})
}

// @Summary		Get calendar day
// @Description	Returns the events of a single day with its status and statistics
// @Tags			Calendar
// @Produce		json
// @Success		200			{object}	DayResponse
// @Failure		400			{object}	DayResponse
// @Failure		500			{object}	DayResponse
// @Param			date		path		string		true	"The day in YYYY-MM-DD format"
// @Param			type		query		[]string	false	"Filter by transaction type. Can be repeated."
// @Param			category	query		[]string	false	"Filter by category ID. Can be repeated."
// @Param			status		query		[]string	false	"Filter by transaction status. Can be repeated."
// @Param			account		query		string		false	"Filter by account ID"
// @Router			/v1/calendar/days/{date} [get]
func (co Controller) GetCalendarDay(c *gin.Context) {
	var uri URIDate
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DayResponse{
			Error: &s,
		})
		return
	}

	var filter calendar.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DayResponse{
			Error: &s,
		})
		return
	}

	if err := validateFilterIDs(filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DayResponse{
			Error: &s,
		})
		return
	}

	date, err := calendar.ParseDate(uri.Date, co.Calendar.Location())
	if err != nil {
		s := errDateInvalid.Error()
		c.JSON(http.StatusBadRequest, DayResponse{
			Error: &s,
		})
		return
	}
	date = date.In(co.Calendar.Location())

	day, err := co.Calendar.DayOf(c.Request.Context(), date, filter)
	if err != nil {
		s := err.Error()
		c.JSON(calendarStatus(err), DayResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	params := c.Request.URL.Query()

	c.JSON(http.StatusOK, DayResponse{
		Data: &Day{
			Day: day,
			Links: DayLinks{
				Self:     withQuery(fmt.Sprintf("%s/v1/calendar/days/%s", url, day.Date), params, ""),
				Calendar: withQuery(url+"/v1/calendar", params, types.MonthOf(date).String()),
			},
		},
	})
}

// validateFilterIDs checks that all category and account IDs of the filter are UUIDs.
func validateFilterIDs(filter calendar.Filter) error {
	for _, id := range filter.Categories {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("%w: category '%s'", httputil.ErrInvalidUUID, id)
		}
	}

	if filter.AccountID != "" {
		if _, err := uuid.Parse(filter.AccountID); err != nil {
			return fmt.Errorf("%w: account '%s'", httputil.ErrInvalidUUID, filter.AccountID)
		}
	}

	return nil
}
