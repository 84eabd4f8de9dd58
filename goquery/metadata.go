package goquery

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// metadata is the embedded posting block. Each level is decoded on its own
// so that a malformed value blanks only the fields beneath it.
type metadata struct {
	Name        json.RawMessage
	Description json.RawMessage
	Price       json.RawMessage
	Latitude    json.RawMessage
	Longitude   json.RawMessage
}

// parseMetadata decodes the block. Malformed JSON yields an empty block.
func parseMetadata(raw string) *metadata {
	var m metadata
	top := object(json.RawMessage(raw))
	m.Name = top["name"]
	m.Description = top["description"]

	offers := object(top["offers"])
	m.Price = offers["price"]

	geo := object(object(offers["availableAtOrFrom"])["geo"])
	m.Latitude = geo["latitude"]
	m.Longitude = geo["longitude"]
	return &m
}

// object decodes a JSON object one level deep. Anything else is nil.
func object(raw json.RawMessage) map[string]json.RawMessage {
	if isNull(raw) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

func (m *metadata) price() *float64 {
	return number(m.Price)
}

// geo returns both coordinates or neither.
func (m *metadata) geo() (*float64, *float64) {
	lat, long := number(m.Latitude), number(m.Longitude)
	if lat == nil || long == nil {
		return nil, nil
	}
	return lat, long
}

// description joins name and description with ">>>". Without a description
// it is nil; without a name it is the description alone.
func (m *metadata) description() *string {
	desc := str(m.Description)
	if desc == nil {
		return nil
	}
	if name := str(m.Name); name != nil {
		s := *name + ">>>" + *desc
		return &s
	}
	return desc
}

// number decodes a JSON number or a numeric string such as "8,500".
func number(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		s := str(raw)
		if s == nil {
			return nil
		}
		clean := strings.NewReplacer("$", "", ",", "").Replace(*s)
		v, err = strconv.ParseFloat(strings.TrimSpace(clean), 64)
		if err != nil {
			return nil
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func str(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
