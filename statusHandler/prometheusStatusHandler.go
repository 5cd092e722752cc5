package statusHandler

import (
	"sync"

	"github.com/multiversx/mx-chain-contract-sdk-go/common"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusStatusHandler will define the handler which will update prometheus metrics
type PrometheusStatusHandler struct {
	registry               *prometheus.Registry
	prometheusGaugeMetrics sync.Map
}

// NewPrometheusStatusHandler will return an instance of a PrometheusStatusHandler with the codec metrics registered
func NewPrometheusStatusHandler() *PrometheusStatusHandler {
	psh := &PrometheusStatusHandler{
		registry: prometheus.NewRegistry(),
	}
	psh.InitMetrics()

	return psh
}

// InitMetrics will declare and init all the metrics which should be used for Prometheus
func (psh *PrometheusStatusHandler) InitMetrics() {
	psh.registerMetric(common.MetricNumEncodedCalls, "number of encoded call data requests")
	psh.registerMetric(common.MetricNumDecodedOutputs, "number of decoded return data requests")
	psh.registerMetric(common.MetricNumDecodedInputs, "number of decoded call data requests")
	psh.registerMetric(common.MetricNumDecodedEvents, "number of decoded receipt logs")
	psh.registerMetric(common.MetricNumCodecErrors, "number of failed encode or decode requests")
	psh.registerMetric(common.MetricNumLoadedContracts, "number of registered contract abi definitions")
}

func (psh *PrometheusStatusHandler) registerMetric(key string, help string) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: key,
		Help: help,
	})

	err := psh.registry.Register(gauge)
	if err != nil {
		log.Warn("cannot register metric", "metric", key, "error", err)
		return
	}

	psh.prometheusGaugeMetrics.Store(key, gauge)
}

// Registry returns the gatherer holding every metric of this handler
func (psh *PrometheusStatusHandler) Registry() *prometheus.Registry {
	return psh.registry
}

// GetPrometheusMetricByKey returns the gauge registered under the provided key
func (psh *PrometheusStatusHandler) GetPrometheusMetricByKey(key string) (prometheus.Gauge, error) {
	value, ok := psh.prometheusGaugeMetrics.Load(key)
	if !ok {
		return nil, ErrMetricNotFound
	}

	return value.(prometheus.Gauge), nil
}

// Increment will be used for incrementing the value for a key
func (psh *PrometheusStatusHandler) Increment(key string) {
	value, ok := psh.prometheusGaugeMetrics.Load(key)
	if ok {
		value.(prometheus.Gauge).Inc()
	}
}

// Decrement will be used for decrementing the value for a key
func (psh *PrometheusStatusHandler) Decrement(key string) {
	value, ok := psh.prometheusGaugeMetrics.Load(key)
	if ok {
		value.(prometheus.Gauge).Dec()
	}
}

// SetUInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetUInt64Value(key string, value uint64) {
	metric, ok := psh.prometheusGaugeMetrics.Load(key)
	if ok {
		metric.(prometheus.Gauge).Set(float64(value))
	}
}

// Close will unregister the metrics
func (psh *PrometheusStatusHandler) Close() {
	psh.prometheusGaugeMetrics.Range(func(key, value interface{}) bool {
		psh.registry.Unregister(value.(prometheus.Gauge))
		psh.prometheusGaugeMetrics.Delete(key)
		return true
	})
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *PrometheusStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}
