// Package catalog publishes the static unit catalog to object storage.
//
// The published layout under the configured prefix is:
//
//	<prefix>/units.json        every category keyed by name
//	<prefix>/<category>.json   one ordered unit list per category
//
// Each list entry has the same {"value", "label"} shape served by GET /units,
// so a static frontend can populate its dropdowns without calling the API.
package catalog
