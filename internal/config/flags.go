// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a panel API address in format [host]:[port]
//	-d PostgreSQL DSN
//	-s session slot file path
//	-r REST gateway base URL
//	-k REST gateway api key
//	-c/-config json file path with configs
//	-password-scheme password scheme (bcrypt, legacy)
//	-request-timeout REST gateway request timeout (e.g., "10s")
//	-server-timeout panel API request timeout (e.g., "30s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-auth-panel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN string
	var sessionPath string
	var restAddress string
	var restAPIKey string
	var jsonConfigPath string
	var passwordScheme string
	var requestTimeout time.Duration
	var serverTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&sessionPath, "s", "", "Session slot file path")
	fs.StringVar(&restAddress, "r", "", "REST gateway base URL")
	fs.StringVar(&restAPIKey, "k", "", "REST gateway api key")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordScheme, "password-scheme", "", "Password scheme (bcrypt, legacy)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "REST gateway request timeout (e.g., 10s)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Panel API request timeout (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			PasswordScheme: passwordScheme,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Session: Session{Path: sessionPath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    restAddress,
			APIKey:         restAPIKey,
			RequestTimeout: requestTimeout,
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
