package heap

import (
	"fmt"
	"strconv"
)

// Cast converts input to T for the small set of scalar kinds the
// structured logger needs when flattening a log field's value
// (log_interface.go's LogContext.Value / LogEntry.Value): numbers,
// bools and strings arriving as any. []byte and pointer targets are
// intentionally not handled; nothing in this repo exercises them.
func Cast[T ~int | ~uint | ~float64 | ~bool | ~string](input any) (ret T) {
	switch any(ret).(type) {
	case string:
		return any(fmt.Sprintf("%v", input)).(T)
	case int:
		return any(int(castToInt64(input))).(T)
	case uint:
		return any(uint(castToInt64(input))).(T)
	case float64:
		return any(castToFloat64(input)).(T)
	case bool:
		switch v := input.(type) {
		case bool:
			return any(v).(T)
		case string:
			b, err := strconv.ParseBool(v)
			if err == nil {
				return any(b).(T)
			}
		}
	}
	return
}

func castToInt64(input any) int64 {
	switch v := input.(type) {
	case int8:
		return int64(v)
	case uint8:
		return int64(v)
	case int16:
		return int64(v)
	case uint16:
		return int64(v)
	case int32:
		return int64(v)
	case uint32:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	case int:
		return int64(v)
	case uint:
		return int64(v)
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func castToFloat64(input any) float64 {
	switch v := input.(type) {
	case int8:
		return float64(v)
	case uint8:
		return float64(v)
	case int16:
		return float64(v)
	case uint16:
		return float64(v)
	case int32:
		return float64(v)
	case uint32:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case int:
		return float64(v)
	case uint:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}
