package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apiErrors "github.com/multiversx/mx-chain-contract-sdk-go/api/errors"
	"github.com/multiversx/mx-chain-contract-sdk-go/api/shared"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsPath = "/metrics"

type statusGroup struct {
	*baseGroup
}

// NewStatusGroup returns a new instance of statusGroup exposing the provided metrics in the prometheus text format
func NewStatusGroup(gatherer prometheus.Gatherer) (*statusGroup, error) {
	if gatherer == nil {
		return nil, fmt.Errorf("%w for status group", apiErrors.ErrNilMetricsGatherer)
	}

	sg := &statusGroup{
		baseGroup: &baseGroup{},
	}

	sg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    metricsPath,
			Method:  http.MethodGet,
			Handler: gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
		},
	}

	return sg, nil
}

// UpdateFacade does nothing as the metrics do not depend on the facade
func (sg *statusGroup) UpdateFacade(_ interface{}) error {
	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (sg *statusGroup) IsInterfaceNil() bool {
	return sg == nil
}
