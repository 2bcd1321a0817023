package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress is a host:port pair usable as a pflag.Value.
type NetAddress struct {
	Host string
	Port int
}

// commandLine holds the raw values bound to the flag set.
type commandLine struct {
	address          NetAddress
	serverURL        string
	recordsDir       string
	databaseDSN      string
	configPath       string
	tokenSignKey     string
	tokenIssuer      string
	tokenDuration    time.Duration
	requestTimeout   time.Duration
	journalRetention time.Duration
	cleanupInterval  time.Duration
}

func newFlagSet(cl *commandLine) *pflag.FlagSet {
	fs := pflag.NewFlagSet("go-note-keeper", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.VarP(&cl.address, "address", "a", "listen address host:port")
	fs.StringVar(&cl.serverURL, "server-url", "", "API address used by the client")
	fs.StringVarP(&cl.recordsDir, "records-dir", "f", "", "directory with user records")
	fs.StringVarP(&cl.databaseDSN, "database-dsn", "d", "", "journal database DSN (postgres URI or sqlite path)")
	fs.StringVarP(&cl.configPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cl.tokenSignKey, "token-sign-key", "", "token signing key")
	fs.StringVar(&cl.tokenIssuer, "token-issuer", "", "token issuer")
	fs.DurationVar(&cl.tokenDuration, "token-duration", 0, "token lifetime")
	fs.DurationVar(&cl.requestTimeout, "request-timeout", 0, "request timeout for server and client")
	fs.DurationVar(&cl.journalRetention, "journal-retention", 0, "age after which journal events are removed")
	fs.DurationVar(&cl.cleanupInterval, "journal-cleanup-interval", 0, "how often the journal is cleaned")

	return fs
}

// parseFlags parses args into a partial config. Only flags that were set
// produce non-zero fields, so the result can be merged over env values.
func parseFlags(args []string) (*StructuredConfig, error) {
	var cl commandLine
	if err := newFlagSet(&cl).Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  cl.tokenSignKey,
			TokenIssuer:   cl.tokenIssuer,
			TokenDuration: cl.tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: cl.databaseDSN},
			Files: Files{RecordsDir: cl.recordsDir},
		},
		Server: Server{
			HTTPAddress:    cl.address.String(),
			RequestTimeout: cl.requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    cl.serverURL,
			RequestTimeout: cl.requestTimeout,
		},
		Workers: Workers{
			JournalRetention:       cl.journalRetention,
			JournalCleanupInterval: cl.cleanupInterval,
		},
		JSONFilePath: cl.configPath,
	}, nil
}

// FlagUsage returns the help text of every supported flag.
func FlagUsage() string {
	return newFlagSet(&commandLine{}).FlagUsages()
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}

func (a *NetAddress) Type() string {
	return "host:port"
}
