// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to a flag set by [BindFlags]. After the flag
// set is parsed, [Flags.Config] converts them into a [StructuredConfig].
type Flags struct {
	serverAddress   NetAddress
	databaseDSN     string
	jsonConfigPath  string
	requestTimeout  time.Duration
	batchSize       int
	tables          []string
	pushInterval    time.Duration
	shutdownTimeout time.Duration
	logFile         string
}

// BindFlags registers all configuration flags on fs and returns the holder
// their values are parsed into.
//
// Flags:
//
//	-a/--address     local control API address in format [host]:[port]
//	-d/--dsn         local SQLite database path
//	-c/--config      json file path with configs
//	--request-timeout bridge request timeout (e.g. "15s")
//	--batch-size     rows per remote INSERT statement
//	--tables         comma separated sync unit override
//	--push-interval  periodic push interval (e.g. "5m")
//	--shutdown-timeout API server graceful shutdown timeout
//	--log-file       rotating log file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Local control API address host:port")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Local SQLite database path")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Bridge request timeout (e.g., 15s)")
	fs.IntVar(&f.batchSize, "batch-size", 0, "Rows per remote INSERT statement")
	fs.StringSliceVar(&f.tables, "tables", nil, "Comma separated sync unit override")
	fs.DurationVar(&f.pushInterval, "push-interval", 0, "Periodic push interval (e.g., 5m)")
	fs.DurationVar(&f.shutdownTimeout, "shutdown-timeout", 0, "API server shutdown timeout")
	fs.StringVar(&f.logFile, "log-file", "", "Rotating log file path")

	return f
}

// Config returns the parsed flag values as a [StructuredConfig]. Unset flags
// stay zero so they do not override other sources when merged.
func (f *Flags) Config() *StructuredConfig {
	if f == nil {
		return &StructuredConfig{}
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: f.databaseDSN},
		},
		Bridge: Bridge{
			RequestTimeout: f.requestTimeout,
			BatchSize:      f.batchSize,
		},
		Sync: Sync{Tables: f.tables},
		Server: Server{
			HTTPAddress:     f.serverAddress.String(),
			ShutdownTimeout: f.shutdownTimeout,
		},
		Workers:      Workers{PushInterval: f.pushInterval},
		Log:          Log{File: f.logFile},
		JSONFilePath: f.jsonConfigPath,
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
