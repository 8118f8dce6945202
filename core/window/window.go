// Package window computes storage periods.
// Day counts are inclusive: cargo carried in and out on the same day is stored for one day.
package window

import (
	"cloud.google.com/go/civil"

	"port-charges/core/types"
	"port-charges/internal/errors"
)

// DaysBetween returns the inclusive number of days from start to end
func DaysBetween(start, end civil.Date) (int, error) {
	if !start.IsValid() {
		return 0, errors.Newf(errors.TypeInput, "invalid start date %s", start)
	}
	if !end.IsValid() {
		return 0, errors.Newf(errors.TypeInput, "invalid end date %s", end)
	}
	if end.Before(start) {
		return 0, errors.InvalidRange(start.String(), end.String())
	}
	return end.DaysSince(start) + 1, nil
}

// Days returns the inclusive length of a storage window
func Days(w types.StorageWindow) (int, error) {
	return DaysBetween(w.CarryIn, w.CarryOut)
}

// Parse builds a storage window from YYYY-MM-DD strings
func Parse(carryIn, carryOut string) (types.StorageWindow, error) {
	in, err := civil.ParseDate(carryIn)
	if err != nil {
		return types.StorageWindow{}, errors.Wrapf(errors.TypeInput, err, "carry-in date %q", carryIn)
	}
	out, err := civil.ParseDate(carryOut)
	if err != nil {
		return types.StorageWindow{}, errors.Wrapf(errors.TypeInput, err, "carry-out date %q", carryOut)
	}
	w := types.StorageWindow{CarryIn: in, CarryOut: out}
	if _, err := Days(w); err != nil {
		return types.StorageWindow{}, err
	}
	return w, nil
}
