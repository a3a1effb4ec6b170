//go:build !debug

package voronoi

// logDebugf is a no-op outside a debug build. See log_debug.go for the verbose counterpart.
func logDebugf(format string, v ...interface{}) {}
