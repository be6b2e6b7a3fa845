// Package quantity converts Kubernetes resource quantity strings into
// the units this tool reports: millicores for CPU and MiB for memory.
package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

// memUnits maps memory suffixes to MiB conversion factors. Order matters:
// suffixes overlap ("1Ki" also ends in "i"; "k" is a suffix of "Ki"), so
// the two-letter binary suffixes must be checked before the one-letter
// decimal ones. Decimal prefixes share the binary factors on purpose.
var memUnits = []struct {
	suffix string
	factor float64
}{
	{"Ki", 1.0 / 1024},
	{"Mi", 1},
	{"Gi", 1024},
	{"Ti", 1024 * 1024},
	{"k", 1.0 / 1024},
	{"M", 1},
	{"G", 1024},
}

// ParseCPU converts a CPU quantity string to millicores.
// An empty string means the resource was not declared and yields 0.
func ParseCPU(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	if strings.HasSuffix(s, "m") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "m"), 64)
		if err != nil {
			return 0, fmt.Errorf("parse cpu quantity %q: %w", s, err)
		}
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cpu quantity %q: %w", s, err)
	}
	return v * 1000, nil
}

// ParseMemory converts a memory quantity string to MiB.
// An empty string means the resource was not declared and yields 0.
// A value without any known suffix is taken as raw bytes.
func ParseMemory(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	for _, u := range memUnits {
		if strings.HasSuffix(s, u.suffix) {
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, u.suffix), 64)
			if err != nil {
				return 0, fmt.Errorf("parse memory quantity %q: %w", s, err)
			}
			return v * u.factor, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse memory quantity %q: %w", s, err)
	}
	return v / (1024 * 1024), nil
}
