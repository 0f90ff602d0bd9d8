// Package types defines the Link record, the Store and Backend interfaces,
// the load result, and the standard error types for quicklinks.
//
// See docs/ARCHITECTURE.md § Main Interface.
package types
