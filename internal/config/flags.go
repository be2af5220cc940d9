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

// ParseFlags parses all configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-cookie-hash-key session cookie HMAC key
//	-cookie-block-key session cookie encryption key
//	-secure-cookies mark session cookies Secure
//	-public-url base URL used in invitation links
//	-session-ttl session lifetime (e.g., "168h")
//	-invitation-ttl invitation lifetime (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-redis-address redis address for the summary cache
//	-health-url health provider base URL
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var cookieHashKey, cookieBlockKey string
	var secureCookies bool
	var publicURL string
	var sessionTTL, invitationTTL time.Duration
	var requestTimeout time.Duration
	var redisAddress string
	var healthURL string
	var logLevel string

	fs := flag.NewFlagSet("nutritracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cookieHashKey, "cookie-hash-key", "", "Session cookie HMAC key")
	fs.StringVar(&cookieBlockKey, "cookie-block-key", "", "Session cookie encryption key")
	fs.BoolVar(&secureCookies, "secure-cookies", false, "Mark session cookies Secure")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL for invitation links")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 168h)")
	fs.DurationVar(&invitationTTL, "invitation-ttl", 0, "Invitation lifetime (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address for the summary cache")
	fs.StringVar(&healthURL, "health-url", "", "Health provider base URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionTTL:     sessionTTL,
			InvitationTTL:  invitationTTL,
			CookieHashKey:  cookieHashKey,
			CookieBlockKey: cookieBlockKey,
			SecureCookies:  secureCookies,
			PublicURL:      publicURL,
			LogLevel:       logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HealthBaseURL: healthURL,
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
