package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// instantLayouts are tried in order for string-encoded instants.
// Layouts without a zone are read in the local zone.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Instant is a point in time as stored by the document store.
// Older documents carry dates as RFC3339 strings, bare dates, epoch
// milliseconds or server timestamp objects; all decode into Instant.
type Instant struct {
	time.Time
}

// NewInstant wraps t.
func NewInstant(t time.Time) Instant {
	return Instant{Time: t}
}

// At returns a pointer to an Instant wrapping t.
func At(t time.Time) *Instant {
	i := NewInstant(t)
	return &i
}

// serverTimestamp is the object form written by the document store SDKs.
type serverTimestamp struct {
	Seconds           int64 `json:"seconds" yaml:"seconds"`
	Nanoseconds       int64 `json:"nanoseconds" yaml:"nanoseconds"`
	LegacySeconds     int64 `json:"_seconds" yaml:"_seconds"`
	LegacyNanoseconds int64 `json:"_nanoseconds" yaml:"_nanoseconds"`
}

func (ts serverTimestamp) time() time.Time {
	if ts.Seconds == 0 && ts.Nanoseconds == 0 {
		return time.Unix(ts.LegacySeconds, ts.LegacyNanoseconds)
	}
	return time.Unix(ts.Seconds, ts.Nanoseconds)
}

// ParseInstant parses the string forms an Instant accepts.
// An empty string is the zero time.
func ParseInstant(v string) (time.Time, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized instant %q", v)
}

// MarshalJSON writes the instant as RFC3339, or null when zero.
func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(i.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts strings, epoch milliseconds, timestamp objects and null.
func (i *Instant) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		i.Time = time.Time{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		t, err := ParseInstant(s)
		if err != nil {
			return err
		}
		i.Time = t
	case '{':
		var ts serverTimestamp
		if err := json.Unmarshal(trimmed, &ts); err != nil {
			return fmt.Errorf("decode timestamp object: %w", err)
		}
		i.Time = ts.time()
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("decode instant: %w", err)
		}
		if ms, err := n.Int64(); err == nil {
			i.Time = time.UnixMilli(ms)
			return nil
		}
		f, err := n.Float64()
		if err != nil {
			return fmt.Errorf("decode instant %q: %w", n, err)
		}
		i.Time = time.UnixMilli(int64(f))
	}
	return nil
}

// MarshalYAML writes the instant as RFC3339, or null when zero.
func (i Instant) MarshalYAML() (interface{}, error) {
	if i.IsZero() {
		return nil, nil
	}
	return i.Format(time.RFC3339Nano), nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (i *Instant) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		var ts serverTimestamp
		if err := value.Decode(&ts); err != nil {
			return fmt.Errorf("decode timestamp object: %w", err)
		}
		i.Time = ts.time()
		return nil
	}
	if value.Tag == "!!null" {
		i.Time = time.Time{}
		return nil
	}
	t, err := ParseInstant(value.Value)
	if err != nil {
		return err
	}
	i.Time = t
	return nil
}
