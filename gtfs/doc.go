/*
Package gtfs provides GTFS static feed loading for the stop-router.

Only the files the router needs are read: stops.txt, stop_times.txt and
transfers.txt. Columns are located by header name, so extra or reordered
columns are fine. A feed can be loaded from raw zip bytes, an io.ReaderAt, any
fs.FS holding loose .txt files, or a path/URL via LoadFromPath.

# Basic Usage

	feed, err := gtfs.LoadFromPath(ctx, "./data/google_transit.zip")
	if err != nil {
	    log.Fatal().Err(err).Msg("load feed")
	}

	// Stop names for the search trie
	for _, s := range feed.Stops {
	    name := gtfs.DefaultNameRules().Normalize(s.Name)
	    ...
	}

	// Weighted network for routing
	nw, err := feed.BuildNetwork(gtfs.DefaultCostRules(), nil)
	v, _ := nw.Vertex("1866")
	p, _ := nw.Graph.ShortestPath(v, w)

# Edge weights

  - consecutive stops of one trip (by stop_sequence): CostRules.Hop
  - transfer_type 0 (recommended transfer): CostRules.Transfer
  - transfer_type 2 (timed transfer): min_transfer_time / CostRules.TimedTransferDivisor
  - other transfer types are ignored

# Caching

Parsing a large stop_times.txt takes seconds. SaveFeed and LoadFeed keep the
parsed records in gob form; the trie and the graph are always rebuilt from
them.
*/
package gtfs
