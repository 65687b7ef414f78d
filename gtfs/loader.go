package gtfs

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	stopsFile     = "stops.txt"
	stopTimesFile = "stop_times.txt"
	transfersFile = "transfers.txt"
)

// LoadFromPath loads a feed from an http(s) URL, a .zip file or a directory
// of .txt files.
func LoadFromPath(ctx context.Context, p string) (*Feed, error) {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		b, err := fetch(ctx, p)
		if err != nil {
			return nil, err
		}
		return LoadFromBytes(b)
	}
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return LoadFromFS(os.DirFS(p))
	}
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return LoadFromFS(zr)
}

// LoadFromBytes loads a feed from raw zip bytes
func LoadFromBytes(b []byte) (*Feed, error) {
	return LoadFromReader(bytes.NewReader(b), int64(len(b)))
}

// LoadFromReader loads a feed from a zip archive
func LoadFromReader(r io.ReaderAt, size int64) (*Feed, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return LoadFromFS(zr)
}

// LoadFromFS loads a feed from a filesystem holding stops.txt,
// stop_times.txt and optionally transfers.txt, either at the root or inside
// one top-level directory as some publishers zip them.
func LoadFromFS(fsys fs.FS) (*Feed, error) {
	dir, err := feedDir(fsys)
	if err != nil {
		return nil, err
	}
	f := &Feed{}
	if err := consumeFile(fsys, path.Join(dir, stopsFile), true, f.consumeStops); err != nil {
		return nil, err
	}
	if err := consumeFile(fsys, path.Join(dir, stopTimesFile), true, f.consumeStopTimes); err != nil {
		return nil, err
	}
	if err := consumeFile(fsys, path.Join(dir, transfersFile), false, f.consumeTransfers); err != nil {
		return nil, err
	}
	f.reindex()
	log.Info().
		Int("stops", len(f.Stops)).
		Int("stop_times", len(f.StopTimes)).
		Int("transfers", len(f.Transfers)).
		Int("trips", len(f.tripOrder)).
		Msg("GTFS feed loaded")
	return f, nil
}

// feedDir returns "." or the single subdirectory holding stops.txt
func feedDir(fsys fs.FS) (string, error) {
	if _, err := fs.Stat(fsys, stopsFile); err == nil {
		return ".", nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := fs.Stat(fsys, path.Join(e.Name(), stopsFile)); err == nil {
			return e.Name(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMissingFile, stopsFile)
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// header maps column names to positions
type header map[string]int

func newHeader(row []string) header {
	h := header{}
	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h
}

func (h header) require(file string, cols ...string) error {
	for _, c := range cols {
		if _, ok := h[c]; !ok {
			return fmt.Errorf("%w: %s in %s", ErrMissingColumn, c, file)
		}
	}
	return nil
}

// get returns the trimmed field for col, or "" if the column or field is absent
func (h header) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

type rowFunc func(h header, row []string, line int) error

func consumeFile(fsys fs.FS, name string, required bool, fn func(file string, r io.Reader) error) error {
	fh, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !required {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrMissingFile, path.Base(name))
		}
		return err
	}
	defer fh.Close()
	return fn(path.Base(name), fh)
}

// eachRow reads r as CSV and calls fn for every data row. Rows fn rejects
// are skipped and counted.
func eachRow(file string, r io.Reader, cols []string, fn rowFunc) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	head, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	h := newHeader(head)
	if err := h.require(file, cols...); err != nil {
		return err
	}
	skipped := 0
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := fn(h, row, line); err != nil {
			skipped++
			log.Debug().Err(err).Str("file", file).Int("line", line).Msg("row skipped")
		}
	}
	if skipped > 0 {
		log.Warn().Str("file", file).Int("skipped", skipped).Msg("malformed rows skipped")
	}
	return nil
}

func (f *Feed) consumeStops(file string, r io.Reader) error {
	return eachRow(file, r, []string{"stop_id", "stop_name"}, func(h header, row []string, line int) error {
		s := Stop{
			ID:   h.get(row, "stop_id"),
			Code: h.get(row, "stop_code"),
			Name: h.get(row, "stop_name"),
			Desc: h.get(row, "stop_desc"),
		}
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("empty stop_id or stop_name")
		}
		s.Lat, _ = strconv.ParseFloat(h.get(row, "stop_lat"), 64)
		s.Lon, _ = strconv.ParseFloat(h.get(row, "stop_lon"), 64)
		f.Stops = append(f.Stops, s)
		return nil
	})
}

func (f *Feed) consumeStopTimes(file string, r io.Reader) error {
	return eachRow(file, r, []string{"trip_id", "stop_id"}, func(h header, row []string, line int) error {
		st := StopTime{
			TripID:        h.get(row, "trip_id"),
			ArrivalTime:   h.get(row, "arrival_time"),
			DepartureTime: h.get(row, "departure_time"),
			StopID:        h.get(row, "stop_id"),
		}
		if st.TripID == "" || st.StopID == "" {
			return fmt.Errorf("empty trip_id or stop_id")
		}
		if seq := h.get(row, "stop_sequence"); seq != "" {
			n, err := strconv.Atoi(seq)
			if err != nil {
				return fmt.Errorf("stop_sequence: %w", err)
			}
			st.Sequence = n
		}
		f.StopTimes = append(f.StopTimes, st)
		return nil
	})
}

func (f *Feed) consumeTransfers(file string, r io.Reader) error {
	return eachRow(file, r, []string{"from_stop_id", "to_stop_id"}, func(h header, row []string, line int) error {
		t := Transfer{
			FromStopID:      h.get(row, "from_stop_id"),
			ToStopID:        h.get(row, "to_stop_id"),
			MinTransferTime: -1,
		}
		if t.FromStopID == "" || t.ToStopID == "" {
			return fmt.Errorf("empty from_stop_id or to_stop_id")
		}
		if v := h.get(row, "transfer_type"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("transfer_type: %w", err)
			}
			t.Type = n
		}
		if v := h.get(row, "min_transfer_time"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("min_transfer_time: %w", err)
			}
			t.MinTransferTime = n
		}
		f.Transfers = append(f.Transfers, t)
		return nil
	})
}
