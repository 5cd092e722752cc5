package shared

import (
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-contract-sdk-go/config"
)

// MiddlewareProcessor defines a processor used internally by the web server when processing requests
type MiddlewareProcessor interface {
	MiddlewareHandlerFunc() gin.HandlerFunc
	IsInterfaceNil() bool
}

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// GroupHandler defines the actions needed to be performed by an gin API group
type GroupHandler interface {
	UpdateFacade(newFacade interface{}) error
	RegisterRoutes(
		ws *gin.RouterGroup,
		apiConfig config.ApiRoutesConfig,
		additionalMiddlewares []MiddlewareProcessor,
	)
	IsInterfaceNil() bool
}

// FacadeHandler defines all the methods that a facade should implement
type FacadeHandler interface {
	GetFunctions(contract string) ([]FunctionDescription, error)
	EncodeCall(contract string, function string, args []byte) ([]byte, error)
	DecodeOutput(contract string, function string, data []byte) ([]interface{}, error)
	DecodeInput(contract string, data []byte) (string, []interface{}, error)
	DecodeEvent(contract string, event string, topics [][]byte, data []byte) ([]interface{}, error)
	RestApiInterface() string
	RestAPIServerDebugMode() bool
	IsInterfaceNil() bool
}
