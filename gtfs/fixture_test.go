package gtfs

import (
	"archive/zip"
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const (
	fixtureStops = "\ufeffstop_id,stop_name,stop_lat,stop_lon\n" +
		"A,WB Hastings St FS Holdom Ave,49.28,-123.00\n" +
		"B,Main St Station,49.27,-123.10\n" +
		"C,Commercial Dr,49.26,-123.07\n" +
		"D,Joyce Station,49.24,-123.03\n" +
		"E,Lonely Stop,49.20,-123.01\n"

	fixtureStopTimes = "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"10,07:00:00,07:00:00,A,1\n" +
		"10,07:05:00,07:05:00,B,2\n" +
		"10,07:10:00,07:10:00,C,3\n" +
		"2,07:05:00,07:05:00,C,2\n" +
		"2,7:00:00,7:00:00,B,1\n" +
		"3,25:05:00,25:05:00,D,1\n" +
		"3,25:10:00,25:10:00,A,2\n"

	fixtureTransfers = "from_stop_id,to_stop_id,transfer_type,min_transfer_time\n" +
		"C,D,0,\n" +
		"B,D,2,300\n" +
		"A,E,3,\n" +
		"D,C,2,\n" +
		"X,A,0,\n"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"stops.txt":      {Data: []byte(fixtureStops)},
		"stop_times.txt": {Data: []byte(fixtureStopTimes)},
		"transfers.txt":  {Data: []byte(fixtureTransfers)},
	}
}

func fixtureFeed(t *testing.T) *Feed {
	t.Helper()
	f, err := LoadFromFS(fixtureFS())
	require.NoError(t, err)
	return f
}

// zipFiles builds an in-memory zip archive of name -> content
func zipFiles(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
