package common

// StatusHandler records the counters and gauges of the running application
type StatusHandler interface {
	Increment(key string)
	SetUInt64Value(key string, value uint64)
	Close()
	IsInterfaceNil() bool
}
