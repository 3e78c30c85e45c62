//go:build !debug
// +build !debug

package rays

func DebugLog(format string, args ...interface{}) {}
