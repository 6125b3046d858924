package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nshtkum/perplexchecker/internal/model"
)

// Extraction failures. The caller holds the raw reply and is expected to
// surface it alongside these.
var (
	ErrNoJSONFound   = errors.New("no JSON object found in reply")
	ErrMalformedJSON = errors.New("reply contains a JSON candidate that could not be parsed")
)

// recoveryStrategy is one (transform, parse) attempt. Strategies run in
// order against the candidate region; append new ones here instead of
// nesting retries in control flow.
type recoveryStrategy struct {
	name      string
	transform func(string) string
}

var recoveryStrategies = []recoveryStrategy{
	{"verbatim", func(s string) string { return s }},
	{"strip-control-characters", stripControlCharacters},
}

// controlCharPattern covers C0 controls, DEL and the C1 range. Models
// occasionally emit raw control bytes inside string values, which
// encoding/json rejects.
var controlCharPattern = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}-\x{009F}]`)

func stripControlCharacters(input string) string {
	return controlCharPattern.ReplaceAllString(input, "")
}

// rawPropertyReply mirrors the JSON shape the prompt asks for. Pricing rows
// are decoded loosely because models sometimes emit numbers where the
// template shows strings. Unknown top-level fields are ignored.
type rawPropertyReply struct {
	Images    []string         `json:"images"`
	Pricing   []map[string]any `json:"pricing"`
	Builder   *string          `json:"builder"`
	Amenities []string         `json:"amenities"`
}

// ExtractPropertyRecord pulls a PropertyRecord out of a free-text model
// reply. The candidate region is the greedy span from the first '{' to the
// last '}', deliberately not a balanced-brace walk: replies with multiple
// independent objects fail as malformed instead of silently picking one.
// Returns per-image warnings for URLs that are present but not absolute
// http URLs; those stay in the record so the caller can decide how to
// render them.
//
// Pure function of its input: calling it twice on the same reply yields
// identical results.
func ExtractPropertyRecord(reply string) (*model.PropertyRecord, []string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, nil, ErrNoJSONFound
	}
	candidate := reply[start : end+1]

	var raw rawPropertyReply
	parsed := false
	for _, strategy := range recoveryStrategies {
		raw = rawPropertyReply{}
		if err := json.Unmarshal([]byte(strategy.transform(candidate)), &raw); err == nil {
			parsed = true
			break
		}
	}
	if !parsed {
		return nil, nil, ErrMalformedJSON
	}

	record := &model.PropertyRecord{
		Images:    raw.Images,
		Pricing:   make([]model.PricingEntry, 0, len(raw.Pricing)),
		Builder:   raw.Builder,
		Amenities: raw.Amenities,
	}
	if record.Images == nil {
		record.Images = []string{}
	}
	if record.Amenities == nil {
		record.Amenities = []string{}
	}

	// Source order of pricing rows is preserved as-is.
	for _, row := range raw.Pricing {
		record.Pricing = append(record.Pricing, model.PricingEntry{
			Configuration: stringField(row, "configuration"),
			AreaSqft:      stringField(row, "area_sqft"),
			PriceINR:      stringField(row, "price_inr"),
		})
	}

	var warnings []string
	for i, url := range record.Images {
		if url == "" || !strings.HasPrefix(url, "http") {
			warnings = append(warnings, fmt.Sprintf("image %d is not an absolute http URL: %q", i+1, truncateString(url, 80)))
		}
	}

	return record, warnings, nil
}

// stringField reads a pricing field, tolerating numeric values and filling
// missing ones with the N/A placeholder
func stringField(row map[string]any, key string) string {
	value, ok := row[key]
	if !ok || value == nil {
		return model.PlaceholderNA
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			return model.PlaceholderNA
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return model.PlaceholderNA
	}
}

// truncateString truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
