package staff

import (
	"fmt"
	"math"
	"strings"

	sonic "github.com/bytedance/sonic"
)

const RawAbilityKey = "rawAbility"

// RawAbility extracts rawAbility from an ability blob. Missing keys,
// non-numeric values and malformed JSON all read as zero.
func RawAbility(blob string) int64 {
	fields, err := decodeAbility(blob)
	if err != nil {
		return 0
	}

	switch v := fields[RawAbilityKey].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// WithRawAbility returns blob with rawAbility set to value. Other keys are
// kept; an unreadable blob is replaced by a fresh one.
func WithRawAbility(blob string, value int64) (string, error) {
	fields, err := decodeAbility(blob)
	if err != nil {
		fields = map[string]any{}
	}
	fields[RawAbilityKey] = value

	out, err := sonic.ConfigStd.MarshalToString(fields)
	if err != nil {
		return "", fmt.Errorf("encode ability blob: %w", err)
	}
	return out, nil
}

func decodeAbility(blob string) (map[string]any, error) {
	if strings.TrimSpace(blob) == "" {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := sonic.ConfigStd.UnmarshalFromString(blob, &fields); err != nil {
		return nil, fmt.Errorf("decode ability blob: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("decode ability blob: not an object")
	}
	return fields, nil
}
