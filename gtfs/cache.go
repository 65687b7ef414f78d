package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// cachedFeed is the gob payload. Lookup maps are rebuilt on decode.
type cachedFeed struct {
	Stops     []Stop
	StopTimes []StopTime
	Transfers []Transfer
}

// SaveFeed encodes the parsed rows of f with gob. The routing network and
// the search trie are not part of the cache.
func SaveFeed(f *Feed) ([]byte, error) {
	var buf bytes.Buffer
	if err := SaveFeedToWriter(f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadFeed decodes a feed written by SaveFeed
func LoadFeed(data []byte) (*Feed, error) {
	return LoadFeedFromReader(bytes.NewReader(data))
}

// SaveFeedToFile writes the gob encoding of f to path
func SaveFeedToFile(f *Feed, path string) error {
	data, err := SaveFeed(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFeedFromFile reads a feed cache written by SaveFeedToFile
func LoadFeedFromFile(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return LoadFeed(data)
}

// SaveFeedToWriter writes the gob encoding of f to w
func SaveFeedToWriter(f *Feed, w io.Writer) error {
	payload := cachedFeed{Stops: f.Stops, StopTimes: f.StopTimes, Transfers: f.Transfers}
	if err := gob.NewEncoder(w).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}
	return nil
}

// LoadFeedFromReader decodes a feed from r
func LoadFeedFromReader(r io.Reader) (*Feed, error) {
	var payload cachedFeed
	if err := gob.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	f := &Feed{Stops: payload.Stops, StopTimes: payload.StopTimes, Transfers: payload.Transfers}
	f.reindex()
	return f, nil
}
