//go:build !windows

package console

// EnableColors is a no-op outside Windows.
func EnableColors() {}
