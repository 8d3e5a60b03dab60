package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by the client and server commands.
const (
	FlagConfig         = "config"
	FlagLogLevel       = "log-level"
	FlagLogFile        = "log-file"
	FlagServerAddress  = "server"
	FlagRequestTimeout = "request-timeout"
	FlagDatabaseDSN    = "db"
	FlagSyncInterval   = "sync-interval"
	FlagListenAddress  = "address"
	FlagTokenSignKey   = "token-sign-key"
	FlagTokenIssuer    = "token-issuer"
	FlagTokenDuration  = "token-duration"
)

// RegisterClientFlags adds the client configuration flags to fs.
func RegisterClientFlags(fs *pflag.FlagSet) {
	registerCommonFlags(fs)
	fs.StringP(FlagServerAddress, "s", "", "Remote goals API base URL")
	fs.Duration(FlagRequestTimeout, 0, "Remote request timeout (e.g. 10s)")
	fs.StringP(FlagDatabaseDSN, "d", "", "Local SQLite database path")
	fs.Duration(FlagSyncInterval, 0, "Background sync interval for watch (e.g. 1m)")
}

// RegisterServerFlags adds the stub server configuration flags to fs.
func RegisterServerFlags(fs *pflag.FlagSet) {
	registerCommonFlags(fs)
	var address NetAddress
	fs.VarP(&address, FlagListenAddress, "a", "Listen address host:port")
	fs.Duration(FlagRequestTimeout, 0, "Inbound request timeout (e.g. 30s)")
	fs.String(FlagTokenSignKey, "", "JWT signing key")
	fs.String(FlagTokenIssuer, "", "JWT issuer")
	fs.Duration(FlagTokenDuration, 0, "JWT lifetime (e.g. 24h)")
}

func registerCommonFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file path")
}

// parseFlags copies every flag the user explicitly set into a config layer.
// Unset flags leave their fields zero so lower layers show through.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var errs []error

	str := func(name string, dst *string) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	dur := func(name string, dst *time.Duration) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			d, err := time.ParseDuration(f.Value.String())
			if err != nil {
				errs = append(errs, fmt.Errorf("flag --%s: %w", name, err))
				return
			}
			*dst = d
		}
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagLogLevel, &cfg.Log.Level)
	str(FlagLogFile, &cfg.Log.File)
	str(FlagServerAddress, &cfg.Adapter.HTTPAddress)
	str(FlagDatabaseDSN, &cfg.Storage.DB.DSN)
	str(FlagListenAddress, &cfg.Server.HTTPAddress)
	str(FlagTokenSignKey, &cfg.App.TokenSignKey)
	str(FlagTokenIssuer, &cfg.App.TokenIssuer)

	dur(FlagSyncInterval, &cfg.Workers.SyncInterval)
	dur(FlagTokenDuration, &cfg.App.TokenDuration)

	// the same flag name means a different field for each role
	if fs.Lookup(FlagListenAddress) != nil {
		dur(FlagRequestTimeout, &cfg.Server.RequestTimeout)
	} else {
		dur(FlagRequestTimeout, &cfg.Adapter.RequestTimeout)
	}

	return cfg, errors.Join(errs...)
}

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
