// Package engine runs the scrubber over a tree of HTML documents. It walks
// the working tree, digests each document's visible content with a bounded
// worker pool, reuses cached digests for unchanged files and compares the
// tree against a git revision. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine
