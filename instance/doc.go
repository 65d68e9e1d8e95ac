// Package instance reads, writes and generates bay instances.
//
// The text format is a stream of whitespace-separated integers:
//
//	m nels
//	count_0 item ... item
//	...
//	count_{m-1} item ... item
//
// Each stack line lists its blocks bottom to top. The JSON form carries the
// same data as {"name": ..., "stacks": [[...], ...], "items": nels}, where
// "items" defaults to the number of blocks present.
//
// Every reader validates conservation with bay.Validate before returning.
package instance
