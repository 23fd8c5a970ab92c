package export

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// literal renders values the way the legacy dumps spell them: bare
// true/false, unquoted numbers, and strings copied verbatim between quotes.
// With strict set, strings and enum names are escaped to valid JSON.
type literal struct {
	strict bool
}

func (l literal) str(s string) string {
	if !l.strict {
		return `"` + s + `"`
	}
	b, _ := json.Marshal(s)
	return string(b)
}

// enum renders an enum constant. The legacy dumps wrote these unquoted.
func (l literal) enum(s string) string {
	if !l.strict {
		return s
	}
	return l.str(s)
}

func (literal) boolean(v bool) string {
	return strconv.FormatBool(v)
}

func (literal) integer(v int) string {
	return strconv.Itoa(v)
}

func (l literal) float(f float64) string {
	if l.strict && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return "null"
	}
	return javaDouble(f)
}

// javaDouble formats f like java.lang.Double.toString: at least one
// fractional digit, scientific notation outside [1e-3, 1e7).
func javaDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}

type attr struct {
	key   string
	value string
}

// attrs is an ordered attribute list; keys are written in insertion order.
type attrs []attr

func (a attrs) add(key, value string) attrs {
	return append(a, attr{key: key, value: value})
}

func (a attrs) clone() attrs {
	out := make(attrs, len(a), len(a)+8)
	copy(out, a)
	return out
}

func (a attrs) render() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, kv := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('"')
		sb.WriteString(kv.key)
		sb.WriteString(`": `)
		sb.WriteString(kv.value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// jsonArray joins rendered entries into the array layout of the dump files.
func jsonArray(entries []string) string {
	return "[\n" + strings.Join(entries, ",\n") + "\n]\n"
}
