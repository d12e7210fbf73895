package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	errNilValue = errors.New("value is null")
	errNaN      = errors.New("value is not a number")
)

// toIntegral converts raw to a whole number, truncating any fractional part.
// The result is returned as float64 so that values beyond the int range still
// compare correctly against the bounds (they come back as ±Inf).
func toIntegral(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, errNilValue
	case string:
		return parseIntegral(v)
	case json.Number:
		if n, err := parseIntegral(v.String()); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return truncate(f)
	case float64:
		return truncate(v)
	case float32:
		return truncate(float64(v))
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

func parseIntegral(s string) (float64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(strings.TrimSpace(s), "-") {
				return math.Inf(-1), nil
			}
			return math.Inf(1), nil
		}
		return 0, err
	}
	return float64(n), nil
}

func truncate(f float64) (float64, error) {
	if math.IsNaN(f) {
		return 0, errNaN
	}
	return math.Trunc(f), nil
}

// toFloat converts raw to a float64. NaN is refused; ±Inf passes through and
// fails the range check instead.
func toFloat(raw any) (float64, error) {
	var (
		f   float64
		err error
	)
	switch v := raw.(type) {
	case nil:
		return 0, errNilValue
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			err = nil
		}
	case json.Number:
		f, err = strconv.ParseFloat(v.String(), 64)
	default:
		f, err = cast.ToFloat64E(raw)
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, errNaN
	}
	return f, nil
}

// toText converts raw to its string form.
func toText(raw any) (string, error) {
	return cast.ToStringE(raw)
}

// round2 rounds the exact binary value to two decimal places. Scaling by 100
// first would round twice and flip ties such as 2.675.
func round2(f float64) float64 {
	if math.IsInf(f, 0) {
		return f
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil || v == 0 {
		// drops the sign of -0.00
		return 0
	}
	return v
}
