package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Progress is a stored completion value. Its scale is ambiguous (fraction of
// 1 or percent of 100); use the progress package to interpret it.
type Progress float64

// Float returns the raw stored value.
func (p Progress) Float() float64 {
	return float64(p)
}

// ParseProgress reads a numeric string, tolerating a trailing percent sign.
// Unreadable input yields 0.
func ParseProgress(v string) float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else decodes to 0.
func (p *Progress) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*p = 0
			return nil
		}
		*p = Progress(ParseProgress(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		*p = 0
		return nil
	}
	*p = Progress(f)
	return nil
}

// UnmarshalYAML accepts numbers and numeric strings. Anything else decodes to 0.
func (p *Progress) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*p = 0
		return nil
	}
	*p = Progress(ParseProgress(value.Value))
	return nil
}
