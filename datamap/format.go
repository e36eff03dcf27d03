package datamap

import (
	"fmt"
	"strconv"
	"time"
)

// FormatScalar renders a leaf value the way it goes on the wire. Floats are
// written without exponent, so JSON numbers like 12345678 stay "12345678".
func FormatScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		return t.Format(time.RFC3339)
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(v)
	}
}
