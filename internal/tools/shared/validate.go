package shared

import (
	"strconv"
	"strings"

	"waypoint/pkg/errors"
)

// Upstream Places API bounds.
const (
	MinPriceLevel = 0
	MaxPriceLevel = 4

	DefaultRadiusMeters = 5000
	MaxRadiusMeters     = 50000
)

// RequireString rejects empty required arguments.
func RequireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationError(field, "is required", nil)
	}
	return nil
}

// ParsePriceRange parses a "min-max" price level string into the upstream
// minprice/maxprice pair. Empty input means no price filter. Anything not of
// the form "<0-4>-<0-4>" with min <= max is an invalid argument.
func ParsePriceRange(value string) (minPrice, maxPrice *int, err error) {
	if value == "" {
		return nil, nil, nil
	}

	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return nil, nil, errors.NewValidationError("price_level", "must be of the form 'min-max', e.g. '0-2'", value)
	}

	lo, loErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, hiErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if loErr != nil || hiErr != nil {
		return nil, nil, errors.NewValidationError("price_level", "bounds must be integers between 0 and 4", value)
	}
	if lo < MinPriceLevel || lo > MaxPriceLevel || hi < MinPriceLevel || hi > MaxPriceLevel {
		return nil, nil, errors.NewValidationError("price_level", "bounds must be between 0 and 4", value)
	}
	if lo > hi {
		return nil, nil, errors.NewValidationError("price_level", "minimum must not exceed maximum", value)
	}

	return &lo, &hi, nil
}

// ValidateRatingMin checks an optional minimum rating. Zero means unset.
func ValidateRatingMin(value float64) error {
	if value < 0 || value > 5 {
		return errors.NewValidationError("rating_min", "must be between 0 and 5", value)
	}
	return nil
}

// NormalizeRadius applies the default search radius and enforces the
// upstream maximum.
func NormalizeRadius(value int) (int, error) {
	if value == 0 {
		return DefaultRadiusMeters, nil
	}
	if value < 0 || value > MaxRadiusMeters {
		return 0, errors.NewValidationError("radius", "must be between 1 and 50000 meters", value)
	}
	return value, nil
}

// ValidateEnum rejects values outside the allowed set. Empty values pass;
// callers apply their own defaults.
func ValidateEnum(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.NewValidationError(field, "must be one of: "+strings.Join(allowed, ", "), value)
}

// RequireLatitude checks a required latitude argument.
func RequireLatitude(field string, value *float64) (float64, error) {
	if value == nil {
		return 0, errors.NewValidationError(field, "is required", nil)
	}
	if *value < -90 || *value > 90 {
		return 0, errors.NewValidationError(field, "must be between -90 and 90", *value)
	}
	return *value, nil
}

// RequireLongitude checks a required longitude argument.
func RequireLongitude(field string, value *float64) (float64, error) {
	if value == nil {
		return 0, errors.NewValidationError(field, "is required", nil)
	}
	if *value < -180 || *value > 180 {
		return 0, errors.NewValidationError(field, "must be between -180 and 180", *value)
	}
	return *value, nil
}
