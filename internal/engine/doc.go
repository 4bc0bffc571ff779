// Package engine orchestrates one search: compile the pattern, walk the
// tree, fan file scans out across a bounded worker pool, and aggregate
// the results.
//
// # Basic Usage
//
//	eng := engine.New()
//
//	res, err := eng.Run(ctx, types.SearchConfig{
//	    Root:    "/path/to/project",
//	    Pattern: "TODO",
//	})
//	if err != nil {
//	    return err // bad pattern or bad root; nothing was searched
//	}
//
//	fmt.Printf("%d matches, %d files in %v\n",
//	    len(res.Matches), res.FilesScanned, res.Duration)
//
// # Failure Model
//
// Run fails only before any file I/O: an invalid regex or a missing
// root aborts the whole search. Everything after that is per-file and
// isolated — an unreadable file becomes a warning and a skip count, a
// binary file a silent skip, and sibling scans are unaffected. A
// cancelled context abandons outstanding scans between files and
// returns the context's error.
//
// # Ordering
//
// Scans complete in arbitrary order, so the engine sorts the aggregated
// matches by path and line before returning. Matches within one file
// are always in line order because a single worker owns the whole file.
package engine
