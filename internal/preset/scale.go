package preset

import (
	"strconv"
	"strings"

	"github.com/yacobolo/atomcss/internal/engine"
)

// spacingValue maps a spacing segment to CSS: numeric steps are quarter
// rems ("4" is 1rem), "px" is 1px and brackets are arbitrary values.
func spacingValue(v string, allowAuto bool) (string, bool) {
	switch {
	case engine.IsArbitrary(v):
		return engine.ArbitraryValue(v)
	case v == "px":
		return "1px", true
	case v == "0":
		return "0px", true
	case v == "auto":
		return "auto", allowAuto
	}

	if !isDecimal(v) {
		return "", false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(n*0.25, 'f', -1, 64) + "rem", true
}

// negate applies a leading "-" from the utility to a spacing value.
func negate(sign, v string, allowAuto bool) (string, bool) {
	value, ok := spacingValue(v, allowAuto)
	if !ok || sign != "-" {
		return value, ok
	}

	switch {
	case value == "auto":
		return "", false
	case value == "0px":
		return value, true
	case engine.IsArbitrary(v):
		return "calc(" + value + " * -1)", true
	}
	return "-" + value, true
}

var sizeKeywords = map[string]string{
	"auto": "auto",
	"full": "100%",
	"min":  "min-content",
	"max":  "max-content",
	"fit":  "fit-content",
	"svh":  "100svh",
	"dvh":  "100dvh",
}

// sizeValue extends the spacing scale with keywords and fractions.
// viewport is what "screen" means for the property, "" to reject it.
func sizeValue(v, viewport string) (string, bool) {
	if engine.IsArbitrary(v) {
		return engine.ArbitraryValue(v)
	}
	if kw, ok := sizeKeywords[v]; ok {
		return kw, true
	}
	if v == "screen" {
		return viewport, viewport != ""
	}
	if num, den, ok := strings.Cut(v, "/"); ok {
		return fraction(num, den)
	}
	return spacingValue(v, false)
}

func fraction(num, den string) (string, bool) {
	a, err := strconv.Atoi(num)
	if err != nil || a < 0 {
		return "", false
	}
	b, err := strconv.Atoi(den)
	if err != nil || b <= 0 {
		return "", false
	}
	if a == 0 {
		return "0%", true
	}

	pct := strconv.FormatFloat(float64(a)*100/float64(b), 'f', 6, 64)
	pct = strings.TrimRight(strings.TrimRight(pct, "0"), ".")
	return pct + "%", true
}

// isDecimal accepts "4" and "0.5" but not signs, exponents or "Inf".
func isDecimal(v string) bool {
	digits := 0
	for i := 0; i < len(v); i++ {
		switch c := v[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c != '.':
			return false
		}
	}
	return digits > 0 && strings.Count(v, ".") <= 1
}

func isInt(v string) bool {
	_, err := strconv.Atoi(v)
	return err == nil
}

// isLength guesses whether an arbitrary value is a size rather than a color.
func isLength(v string) bool {
	if v == "" {
		return false
	}
	if c := v[0]; (c >= '0' && c <= '9') || c == '.' {
		return true
	}
	for _, fn := range []string{"calc(", "clamp(", "min(", "max("} {
		if strings.HasPrefix(v, fn) {
			return true
		}
	}
	return false
}
