// Package utils provides internal utility functions for the stop-router.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Clock time (HH:MM:SS) validation and comparison
//   - Logging initialization
package utils
