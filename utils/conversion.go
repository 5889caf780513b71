package utils

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeColumnValue converts a raw driver value into a JSON-friendly Go value
// using the column's database type name. Integers become int64, decimals and
// floats become float64, NULL becomes nil and everything else becomes string.
func NormalizeColumnValue(dbType string, v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case sql.RawBytes:
		return parseByType(dbType, string(val))
	case []byte:
		return parseByType(dbType, string(val))
	case string:
		return parseByType(dbType, val)
	case int64, float64, bool:
		return val
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val)
		}
		return float64(val)
	case float32:
		return float64(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func parseByType(dbType, raw string) interface{} {
	t := strings.ToUpper(dbType)
	switch {
	case strings.Contains(t, "INT"):
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case strings.Contains(t, "DECIMAL"), strings.Contains(t, "DOUBLE"), strings.Contains(t, "FLOAT"), t == "REAL":
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}

// ToFloat64 converts a normalized numeric value to float64.
// Returns false for nil and non-numeric values.
func ToFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}
