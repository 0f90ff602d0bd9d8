// Package quicklinks carries build metadata for the quicklinks module.
package quicklinks

// Version is the quicklinks release version.
const Version = "0.1.0"
