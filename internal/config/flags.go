package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d session journal DSN
//	-c/-config json file path with configs
//	-data-dir application data directory
//	-log-level zerolog level name
//	-execution-rpc default execution JSON-RPC endpoint
//	-consensus-rpc default beacon REST endpoint
//	-sync-timeout light-client sync timeout (e.g., "5m")
//	-poll-interval head tracker poll interval (e.g., "12s")
//	-replace-policy "replace" or "reject"
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-runtime-size maximum concurrent background tasks
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var dataDir string
	var logLevel string
	var executionRPC string
	var consensusRPC string
	var syncTimeout time.Duration
	var pollInterval time.Duration
	var replacePolicy string
	var requestTimeout time.Duration
	var runtimeSize int

	fs := flag.NewFlagSet(DefaultAppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Session journal DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dataDir, "data-dir", "", "Application data directory")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&executionRPC, "execution-rpc", "", "Default execution RPC URL")
	fs.StringVar(&consensusRPC, "consensus-rpc", "", "Default consensus RPC URL")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Light client sync timeout (e.g., 5m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Head tracker poll interval (e.g., 12s)")
	fs.StringVar(&replacePolicy, "replace-policy", "", "Session replace policy: replace or reject")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&runtimeSize, "runtime-size", 0, "Maximum concurrent background tasks")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DataDir:  dataDir,
			LogLevel: logLevel,
		},
		Helios: Helios{
			DefaultExecutionRPC: executionRPC,
			DefaultConsensusRPC: consensusRPC,
			SyncTimeout:         syncTimeout,
			PollInterval:        pollInterval,
			ReplacePolicy:       ReplacePolicy(replacePolicy),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RuntimeSize: runtimeSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
