package config

// Config will hold the whole config file's data
type Config struct {
	General   GeneralConfig
	WebServer WebServerConfig
	Abi       AbiConfig
}

// GeneralConfig holds the settings shared by every command
type GeneralConfig struct {
	LogLevel string
}

// WebServerConfig holds the REST API settings
type WebServerConfig struct {
	Interface            string
	DebugMode            bool
	SimultaneousRequests uint32
}

// AbiConfig holds the contract ABI definitions loaded at startup
type AbiConfig struct {
	Contracts []ContractConfig
}

// ContractConfig binds a contract name to its ABI JSON file
type ContractConfig struct {
	Name string
	File string
}

// ApiRoutesConfig holds the configuration related to Rest API routes
type ApiRoutesConfig struct {
	Logging     ApiLoggingConfig
	APIPackages map[string]APIPackageConfig
}

// ApiLoggingConfig holds the configuration related to API requests logging
type ApiLoggingConfig struct {
	LoggingEnabled          bool
	ThresholdInMicroSeconds int
}

// APIPackageConfig holds the configuration for the routes of each package
type APIPackageConfig struct {
	Routes []RouteConfig
}

// RouteConfig holds the configuration for a single route
type RouteConfig struct {
	Name string
	Open bool
}
