// Package record holds the value types shared by the Team and Staff tables.
package record

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric column value. Text containing a '.' parses as a
// decimal, anything else as an integer. Stored text that is not a number
// is kept verbatim so it can be shown and written back unchanged.
type Number struct {
	i       int64
	f       float64
	decimal bool
	text    string
}

func Int(v int64) Number {
	return Number{i: v}
}

func Decimal(v float64) Number {
	return Number{f: v, decimal: true}
}

// ParseNumber parses user-entered text the way the editor accepts it.
func ParseNumber(raw string) (Number, error) {
	value := strings.TrimSpace(raw)
	if strings.Contains(value, ".") {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Number{}, err
		}
		return Decimal(f), nil
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return Number{}, err
	}
	return Int(i), nil
}

// IsText reports whether the stored value was text that does not parse.
func (n Number) IsText() bool {
	return n.text != ""
}

func (n Number) IsDecimal() bool {
	return n.decimal
}

func (n Number) Int64() int64 {
	if n.decimal {
		return int64(n.f)
	}
	return n.i
}

func (n Number) Float64() float64 {
	if n.decimal {
		return n.f
	}
	return float64(n.i)
}

func (n Number) String() string {
	if n.text != "" {
		return n.text
	}
	if !n.decimal {
		return strconv.FormatInt(n.i, 10)
	}
	out := strconv.FormatFloat(n.f, 'f', -1, 64)
	if !strings.ContainsAny(out, ".eEnN") {
		out += ".0"
	}
	return out
}

// Value implements driver.Valuer.
func (n Number) Value() (driver.Value, error) {
	if n.text != "" {
		return n.text, nil
	}
	if n.decimal {
		return n.f, nil
	}
	return n.i, nil
}

// Scan implements sql.Scanner. NULL scans as integer zero.
func (n *Number) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = Number{}
	case int64:
		*n = Int(v)
	case float64:
		*n = Decimal(v)
	case bool:
		if v {
			*n = Int(1)
		} else {
			*n = Int(0)
		}
	case []byte:
		return n.scanText(string(v))
	case string:
		return n.scanText(v)
	default:
		return fmt.Errorf("unsupported number source %T", src)
	}
	return nil
}

func (n *Number) scanText(raw string) error {
	if strings.TrimSpace(raw) == "" {
		*n = Number{}
		return nil
	}
	parsed, err := ParseNumber(raw)
	if err != nil {
		*n = Number{text: raw}
		return nil
	}
	*n = parsed
	return nil
}

// NormalizeID renders a stored identifier as text so ids read back as
// integers, floats or strings compare equal.
func NormalizeID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case []byte:
		return strings.TrimSpace(string(id))
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case uint:
		return strconv.FormatUint(uint64(id), 10)
	case uint32:
		return strconv.FormatUint(uint64(id), 10)
	case uint64:
		return strconv.FormatUint(id, 10)
	case float64:
		if id == math.Trunc(id) && math.Abs(id) < 1<<53 {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case Number:
		return id.String()
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}
