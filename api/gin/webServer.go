package gin

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	apiErrors "github.com/multiversx/mx-chain-contract-sdk-go/api/errors"
	"github.com/multiversx/mx-chain-contract-sdk-go/api/groups"
	"github.com/multiversx/mx-chain-contract-sdk-go/api/middleware"
	"github.com/multiversx/mx-chain-contract-sdk-go/api/shared"
	"github.com/multiversx/mx-chain-contract-sdk-go/common"
	"github.com/multiversx/mx-chain-contract-sdk-go/config"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/prometheus/client_golang/prometheus"
)

var log = logger.GetOrCreate("api/gin")

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade          shared.FacadeHandler
	ApiConfig       config.ApiRoutesConfig
	WebServerConfig config.WebServerConfig
	MetricsGatherer prometheus.Gatherer
}

type webServer struct {
	sync.RWMutex
	facade          shared.FacadeHandler
	apiConfig       config.ApiRoutesConfig
	webServerConfig config.WebServerConfig
	metricsGatherer prometheus.Gatherer
	httpServer      shared.HttpServerCloser
	groups          map[string]shared.GroupHandler
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	gws := &webServer{
		facade:          args.Facade,
		apiConfig:       args.ApiConfig,
		webServerConfig: args.WebServerConfig,
		metricsGatherer: args.MetricsGatherer,
	}

	return gws, nil
}

func checkArgs(args ArgsNewWebServer) error {
	if check.IfNil(args.Facade) {
		return apiErrors.ErrNilFacadeHandler
	}
	if args.WebServerConfig.SimultaneousRequests == 0 {
		return middleware.ErrInvalidMaxNumRequests
	}

	return nil
}

// UpdateFacade updates the facade used by every registered API group
func (ws *webServer) UpdateFacade(facade shared.FacadeHandler) error {
	if check.IfNil(facade) {
		return apiErrors.ErrNilFacadeHandler
	}

	ws.Lock()
	defer ws.Unlock()

	ws.facade = facade

	for groupName, groupHandler := range ws.groups {
		log.Debug("upgrading facade for gin API group", "group name", groupName)
		err := groupHandler.UpdateFacade(facade)
		if err != nil {
			log.Error("cannot update facade for gin API group", "group name", groupName, "error", err)
		}
	}

	return nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.facade.RestApiInterface() == common.DefaultRestPortOff {
		log.Debug("web server is turned off")
		return nil
	}

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.facade.RestApiInterface(), Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.facade.RestApiInterface())
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	log.Debug("starting web server",
		"SimultaneousRequests", ws.webServerConfig.SimultaneousRequests,
		"debug mode", ws.facade.RestAPIServerDebugMode(),
	)

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	if !ws.facade.RestAPIServerDebugMode() {
		gin.DefaultWriter = &ginWriter{}
		gin.DefaultErrorWriter = &ginErrorWriter{}
		gin.DisableConsoleColor()
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(cors.Default())

	processors, err := ws.createMiddlewares()
	if err != nil {
		return nil, err
	}

	err = ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine, processors)

	return engine, nil
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)
	abiGroup, err := groups.NewAbiGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["abi"] = abiGroup

	if ws.metricsGatherer != nil {
		statusGroup, errStatus := groups.NewStatusGroup(ws.metricsGatherer)
		if errStatus != nil {
			return errStatus
		}
		groupsMap["status"] = statusGroup
	}

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine, processors []shared.MiddlewareProcessor) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup, ws.apiConfig, processors)
	}
}

func (ws *webServer) createMiddlewares() ([]shared.MiddlewareProcessor, error) {
	middlewares := make([]shared.MiddlewareProcessor, 0)

	if ws.apiConfig.Logging.LoggingEnabled {
		threshold := time.Duration(ws.apiConfig.Logging.ThresholdInMicroSeconds) * time.Microsecond
		middlewares = append(middlewares, middleware.NewResponseLoggerMiddleware(threshold))
	}

	globalLimiter, err := middleware.NewGlobalThrottler(ws.webServerConfig.SimultaneousRequests)
	if err != nil {
		return nil, err
	}
	middlewares = append(middlewares, globalLimiter)

	return middlewares, nil
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		return fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
