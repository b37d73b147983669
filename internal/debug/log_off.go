//go:build !debug

package debug

// Log is a no-op unless the debug build tag is set.
func Log(msg interface{}) {}
