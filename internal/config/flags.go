package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a web front end listen address in format [host]:[port]
//	-r records API base URL
//	-t records API request timeout (e.g. "15s")
//	-api-token records API bearer token
//	-request-timeout inbound request timeout (e.g. "30s")
//	-locale UI locale ("ja" or "en")
//	-session-sign-key session cookie signing key
//	-session-duration session cookie lifetime (e.g. "12h")
//	-session-idle-timeout idle time before a session is torn down
//	-detail-url detail/edit view URL
//	-pdf-url PDF export view URL
//	-customer-url customer page URL
//	-sweep-interval idle session sweep interval
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "r", "", "Records API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", 0, "Records API request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Adapter.Token, "api-token", "", "Records API bearer token")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.Locale, "locale", "", "UI locale (ja, en)")
	fs.StringVar(&cfg.App.SessionSignKey, "session-sign-key", "", "Session signing key")
	fs.DurationVar(&cfg.App.SessionDuration, "session-duration", 0, "Session duration (e.g., 12h)")
	fs.DurationVar(&cfg.App.SessionIdleTimeout, "session-idle-timeout", 0, "Idle session timeout (e.g., 30m)")
	fs.IntVar(&cfg.App.MaxSessions, "max-sessions", 0, "Maximum number of live sessions")
	fs.StringVar(&cfg.Navigation.DetailURL, "detail-url", "", "Detail view URL")
	fs.StringVar(&cfg.Navigation.PDFURL, "pdf-url", "", "PDF export view URL")
	fs.StringVar(&cfg.Navigation.CustomerURL, "customer-url", "", "Customer page URL")
	fs.DurationVar(&cfg.Workers.SessionSweepInterval, "sweep-interval", 0, "Idle session sweep interval")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg, nil
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
