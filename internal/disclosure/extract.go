package disclosure

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldExtractor scans a merged line stream for known markers and pulls out
// the numeric values the FracFocus layout prints alongside them.
type FieldExtractor struct {
	markerRules []MarkerRule

	// numberPattern matches integer and decimal tokens. The rightmost token
	// on a matched row is the percent-by-mass figure by the source format's
	// convention, which tolerates a variable number of leading numeric
	// columns such as the digits inside the CAS number itself.
	numberPattern *regexp.Regexp

	// waterVolumePattern matches the base water volume header, a colon and
	// a digit run, anywhere in the joined document text
	waterVolumePattern *regexp.Regexp
}

// NewFieldExtractor creates an extractor with the default marker table
func NewFieldExtractor() *FieldExtractor {
	return NewFieldExtractorWithRules(DefaultMarkerRules())
}

// NewFieldExtractorWithRules creates an extractor with a custom marker table
func NewFieldExtractorWithRules(rules []MarkerRule) *FieldExtractor {
	return &FieldExtractor{
		markerRules:        rules,
		numberPattern:      regexp.MustCompile(`\d+(?:\.\d+)?`),
		waterVolumePattern: regexp.MustCompile(`(?i)total base water volume.*?:\s*(\d+)`),
	}
}

// Extract pulls the typed fields out of a merged line stream. A field whose
// marker never matches is left unset, which is distinct from a parsed zero.
func (e *FieldExtractor) Extract(lines []string) *ExtractedFields {
	fields := &ExtractedFields{}

	e.extractWaterVolume(lines, fields)

	for _, rule := range e.markerRules {
		if e.fieldSet(fields, rule.Field) {
			continue
		}
		if value, ok := e.findByMarker(lines, rule.Marker()); ok {
			e.setField(fields, rule.Field, value)
		}
	}

	return fields
}

// extractWaterVolume takes the digit run of the first header phrase match
// in the joined text as an integer gallon count
func (e *FieldExtractor) extractWaterVolume(lines []string, fields *ExtractedFields) {
	match := e.waterVolumePattern.FindStringSubmatch(strings.Join(lines, "\n"))
	if match == nil {
		return
	}

	volume, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return
	}
	fields.TotalWaterVolumeGal = &volume
}

// findByMarker scans lines in document order for the marker and returns the
// last numeric token on the first matching line that carries one. It stops
// at the first such line; values are never aggregated across lines.
func (e *FieldExtractor) findByMarker(lines []string, marker string) (float64, bool) {
	for _, line := range lines {
		if !strings.Contains(line, marker) {
			continue
		}

		numbers := e.numberPattern.FindAllString(line, -1)
		if len(numbers) == 0 {
			continue
		}

		value, err := strconv.ParseFloat(numbers[len(numbers)-1], 64)
		if err != nil {
			continue
		}
		return value, true
	}
	return 0, false
}

func (e *FieldExtractor) fieldSet(fields *ExtractedFields, name FieldName) bool {
	switch name {
	case FieldWaterPercent:
		return fields.WaterPercent != nil
	case FieldHCLPercent:
		return fields.HCLPercent != nil
	case FieldProppantPercent:
		return fields.ProppantPercent != nil
	}
	return false
}

func (e *FieldExtractor) setField(fields *ExtractedFields, name FieldName, value float64) {
	switch name {
	case FieldWaterPercent:
		fields.WaterPercent = &value
	case FieldHCLPercent:
		fields.HCLPercent = &value
	case FieldProppantPercent:
		fields.ProppantPercent = &value
	}
}
