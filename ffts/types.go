package ffts

// LogFunc logs something somewhere
type LogFunc func(format string, args ...interface{})

// NoLogf is a LogFunc that discards everything
func NoLogf(format string, args ...interface{}) {}
