package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Tour is one catalog record. Only the fields the matcher and the reply
// renderer read are lifted out; everything else stays in Raw untouched.
// Field names follow the catalog source (tenTour, diemXuatPhat, diemDen,
// soNgay, gia).
type Tour struct {
	Name        string
	Departure   string
	Destination string
	Days        string
	Price       string
	Raw         json.RawMessage
}

// NewTourFromRaw builds a Tour from one raw catalog item. Missing or
// unexpected field types yield empty strings; the record itself is kept.
func NewTourFromRaw(raw json.RawMessage) Tour {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Tour{Raw: raw}
	}
	return Tour{
		Name:        stringField(fields, "tenTour"),
		Departure:   stringField(fields, "diemXuatPhat"),
		Destination: stringField(fields, "diemDen"),
		Days:        stringField(fields, "soNgay"),
		Price:       stringField(fields, "gia"),
		Raw:         raw,
	}
}

// DurationDays parses the duration field. The catalog carries it as either
// a JSON number or a digit string; anything else is an error and the caller
// skips the record.
func (t Tour) DurationDays() (int, error) {
	return strconv.Atoi(strings.TrimSpace(t.Days))
}

// stringField reads a field as text, accepting both JSON strings and
// numbers. Integral numbers render without a decimal point.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
