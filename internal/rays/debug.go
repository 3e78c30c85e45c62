//go:build debug
// +build debug

package rays

import "fmt"

// DebugLog prints a "[DEBUG]" line; it is a no-op unless built with -tags debug.
func DebugLog(format string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}
