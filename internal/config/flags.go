package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s validation server address used by the client
//	-c/-config json file path with configs
//	-catalog YAML type catalog path
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-body-bytes largest accepted payload
//	-undeclared global onUndeclaredKey policy (ignore, delete, reject)
//	-jitless, -nan, -invalid-dates, -clone global type options (true/false)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var adapterAddress string
	var jsonConfigPath string
	var catalogPath string
	var logLevel string
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var types Types

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&adapterAddress, "s", "", "Validation server address used by the client")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&catalogPath, "catalog", "", "YAML type catalog path")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Largest accepted payload in bytes")
	flag.StringVar(&types.OnUndeclaredKey, "undeclared", "", "Global undeclared key policy (ignore, delete, reject)")
	flag.StringVar(&types.Jitless, "jitless", "", "Global jitless option (true/false)")
	flag.StringVar(&types.NumberAllowsNaN, "nan", "", "Global numberAllowsNaN option (true/false)")
	flag.StringVar(&types.DateAllowsInvalid, "invalid-dates", "", "Global dateAllowsInvalid option (true/false)")
	flag.StringVar(&types.Clone, "clone", "", "Global clone option (true/false)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			CatalogPath: catalogPath,
			LogLevel:    logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Types:        types,
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
