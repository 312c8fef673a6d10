// Package core provides a small, stable facade over htmlscrub's internal
// packages for external integrations. It re-exports a narrow API surface so
// callers can depend on a stable import path.
//
// Example:
//
//	visible := core.Scrub(page)
//	sum, err := core.Hash(page, "sha256")
//	if err != nil { /* handle */ }
//	for _, a := range core.Attributes(visible) { fmt.Println(a.Kind, a.Value) }
package core
