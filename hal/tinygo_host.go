//go:build tinygo && !baremetal

package hal

// New returns a TinyGo-on-host HAL: a 128x64 in-memory panel logging with println.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	return NewMemory(128, 64, tinyGoHostLogger{})
}

type tinyGoHostLogger struct{}

func (tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}
