// Package formatter renders planner answers for the CLI.
//
// This package is organized into:
// - builder.go: format selection and the ResponseBuilder entry points
// - text.go: plain text in the classic "from index X to index Y" form
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
package formatter
