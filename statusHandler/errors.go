package statusHandler

import "errors"

// ErrMetricNotFound signals that the requested metric has not been initialized
var ErrMetricNotFound = errors.New("metric does not exist")
