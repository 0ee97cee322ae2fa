// Package debug provides optional file-based debug logging.
//
// When the PANEL_DEBUG environment variable is set to a file path, debug
// entries are appended to that file as JSON lines, rotated by size.
// Otherwise the logger is a no-op.
package debug
