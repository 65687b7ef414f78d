package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/stop-router/planner"
)

// Format selects an output encoding
type Format string

// Supported formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ErrUnknownFormat is returned by ParseFormat
var ErrUnknownFormat = errors.New("formatter: unknown format")

// ParseFormat maps "", "text", "json" and "xml" to a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatXML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ResponseBuilder renders planner results in one format
type ResponseBuilder struct {
	format Format
}

// NewResponseBuilder creates a builder for format
func NewResponseBuilder(format Format) *ResponseBuilder {
	return &ResponseBuilder{format: format}
}

// Route renders a routing answer
func (rb *ResponseBuilder) Route(r *planner.Route) ([]byte, error) {
	switch rb.format {
	case FormatJSON:
		return buildJSON(r)
	case FormatXML:
		return routeXML(r), nil
	}
	return routeText(r), nil
}

// Matches renders stop search results
func (rb *ResponseBuilder) Matches(ms []planner.StopMatch) ([]byte, error) {
	if ms == nil {
		ms = []planner.StopMatch{}
	}
	switch rb.format {
	case FormatJSON:
		return buildJSON(ms)
	case FormatXML:
		return matchesXML(ms), nil
	}
	return matchesText(ms), nil
}

// Arrivals renders the trips found for an arrival time
func (rb *ResponseBuilder) Arrivals(as []planner.Arrival) ([]byte, error) {
	if as == nil {
		as = []planner.Arrival{}
	}
	switch rb.format {
	case FormatJSON:
		return buildJSON(as)
	case FormatXML:
		return arrivalsXML(as), nil
	}
	return arrivalsText(as), nil
}

// formatCost prints whole costs without a fraction
func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
