package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type createEntryRequest struct {
	ProductName      string    `json:"product_name" validate:"required"`
	MachineID        string    `json:"machine_id" validate:"required"`
	QuantityProduced int       `json:"quantity_produced" validate:"required,gt=0"`
	OperatorID       string    `json:"operator_id" validate:"required"`
	ProductionDate   time.Time `json:"production_date" validate:"required"`
	Shift            string    `json:"shift" validate:"omitempty,oneof=Morning Afternoon Night Day"`
	Comments         string    `json:"comments"`
	TimeTakenMinutes int       `json:"time_taken_minutes" validate:"omitempty,gt=0"`
}

type updateEntryRequest struct {
	ProductName      *string    `json:"product_name"`
	MachineID        *string    `json:"machine_id"`
	QuantityProduced *int       `json:"quantity_produced" validate:"omitempty,gt=0"`
	OperatorID       *string    `json:"operator_id"`
	ProductionDate   *time.Time `json:"production_date"`
	Shift            *string    `json:"shift" validate:"omitempty,oneof=Morning Afternoon Night Day"`
	Comments         *string    `json:"comments"`
	TimeTakenMinutes *int       `json:"time_taken_minutes" validate:"omitempty,gt=0"`
}

const dateLayout = "2006-01-02"

// parseListInput reads the filter/pagination query parameters shared by the
// list and export endpoints. Dates are whole days: the upper bound is pushed
// to the end of its day so both ends are inclusive.
func parseListInput(c echo.Context) (ports.ListEntriesInput, error) {
	input := ports.ListEntriesInput{
		ProductName: c.QueryParam("product_name"),
		MachineID:   c.QueryParam("machine_id"),
		OperatorID:  c.QueryParam("operator_id"),
		Shift:       c.QueryParam("shift"),
		Limit:       100,
	}

	var err error
	if input.MinQuantity, err = optionalInt(c, "min_quantity"); err != nil {
		return input, err
	}
	if input.MaxQuantity, err = optionalInt(c, "max_quantity"); err != nil {
		return input, err
	}

	if raw := c.QueryParam("start_date"); raw != "" {
		from, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		input.DateFrom = from
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		to, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		input.DateTo = to.Add(24*time.Hour - time.Nanosecond)
	}

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return input, echo.NewHTTPError(http.StatusBadRequest, "skip must be a non-negative integer")
		}
		input.Skip = skip
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 1000 {
			return input, echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 1000")
		}
		input.Limit = limit
	}

	return input, nil
}

func optionalInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return &n, nil
}

// parseDateRange reads the optional inclusive start_date/end_date parameters
// used by the reports endpoints.
func parseDateRange(c echo.Context) (from, to time.Time, err error) {
	if raw := c.QueryParam("start_date"); raw != "" {
		from, err = time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return from, to, echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		to, err = time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return from, to, echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
