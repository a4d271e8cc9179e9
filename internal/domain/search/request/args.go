package request

import (
	"math"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
)

// Raw tool arguments arrive as a JSON-decoded map, so every number is a
// float64 and every flag a bool. The helpers below report presence separately
// from type failures so callers can apply defaults for absent fields.

func stringArg(args map[string]any, key string) (string, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, domain.NewValidationError(key, domain.ReasonInvalidType)
	}
	return s, true, nil
}

func floatArg(args map[string]any, key string) (float64, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false, domain.NewValidationError(key, domain.ReasonInvalidType)
	}
	return f, true, nil
}

func intArg(args map[string]any, key string) (int, bool, error) {
	f, present, err := floatArg(args, key)
	if err != nil || !present {
		return 0, present, err
	}
	if f != math.Trunc(f) {
		return 0, false, domain.NewValidationError(key, domain.ReasonInvalidType)
	}
	// Conversion of out-of-range floats is implementation-defined.
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false, domain.NewValidationError(key, domain.ReasonOutOfRange)
	}
	return int(f), true, nil
}

func boolArg(args map[string]any, key string) (bool, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, domain.NewValidationError(key, domain.ReasonInvalidType)
	}
	return b, true, nil
}

// limitArg applies the shared limit policy: absent uses the default, an
// explicit non-positive value is rejected, values above max clamp down.
func limitArg(args map[string]any, def, max int) (int, error) {
	limit, present, err := intArg(args, "limit")
	if err != nil {
		return 0, err
	}
	if !present {
		return def, nil
	}
	if limit <= 0 {
		return 0, domain.NewValidationError("limit", domain.ReasonOutOfRange)
	}
	if limit > max {
		limit = max
	}
	return limit, nil
}
