package common

import (
	"fmt"
	"strings"
)

// MaskedValue is the placeholder rendered in place of monetary figures when
// privacy masking is requested.
const MaskedValue = "••••"

// FormatMoney formats a value as dollars with thousands separators, e.g. "$1,234.56".
func FormatMoney(v float64) string {
	if v < 0 {
		return "-$" + addThousands(fmt.Sprintf("%.2f", -v))
	}
	return "$" + addThousands(fmt.Sprintf("%.2f", v))
}

// FormatSignedMoney formats a value with an explicit sign, e.g. "+$1,234.56".
func FormatSignedMoney(v float64) string {
	if v < 0 {
		return "-$" + addThousands(fmt.Sprintf("%.2f", -v))
	}
	return "+$" + addThousands(fmt.Sprintf("%.2f", v))
}

// FormatSignedPct formats a percentage with an explicit sign, e.g. "+3.20%".
func FormatSignedPct(v float64) string {
	if v < 0 {
		return fmt.Sprintf("%.2f%%", v)
	}
	return fmt.Sprintf("+%.2f%%", v)
}

// MaskMoney formats a monetary value, substituting the privacy placeholder
// when masked is set.
func MaskMoney(v float64, masked bool) string {
	if masked {
		return MaskedValue
	}
	return FormatMoney(v)
}

// MaskSignedMoney formats a signed monetary value, substituting the privacy
// placeholder when masked is set.
func MaskSignedMoney(v float64, masked bool) string {
	if masked {
		return MaskedValue
	}
	return FormatSignedMoney(v)
}

// MaskSignedPct formats a signed percentage, substituting the privacy
// placeholder when masked is set.
func MaskSignedPct(v float64, masked bool) string {
	if masked {
		return MaskedValue
	}
	return FormatSignedPct(v)
}

// addThousands inserts comma separators into the integer part of a fixed
// decimal string ("1234567.89" → "1,234,567.89").
func addThousands(s string) string {
	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + fracPart
	}

	var sb strings.Builder
	rem := n % 3
	if rem > 0 {
		sb.WriteString(intPart[:rem])
	}
	for i := rem; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	return sb.String() + fracPart
}
