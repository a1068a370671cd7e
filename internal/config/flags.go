package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a listen address. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// listValue collects a comma separated flag into a slice. It implements
// flag.Value.
type listValue []string

func (l *listValue) String() string {
	return strings.Join(*l, ",")
}

func (l *listValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// parseFlags parses args into a partial config.
//
// Flags:
//
//	-a simulator listen address in format [host]:[port]
//	-devices comma separated device addresses probed by the client
//	-request-timeout per-request timeout (e.g. "10s")
//	-d thumbnail cache database path
//	-c/-config json file path with configs
//	-discovery-interval pause between discovery rounds
//	-client-name name announced by the client
//	-filter scan filter (images|all)
//	-slots number of browser rows
//	-log-file client log file
//	-storage comma separated directories served as storages
//	-categories comma separated command categories
//	-latency artificial latency per filesystem command
//	-eager-metadata list files with metadata already loaded
//	-report-catalog report per-storage folder counts
//	-auth pairing method, kind[:argument]
//	-manufacturer, -model, -serial simulated device identity
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-cam-scan", flag.ContinueOnError)

	var serverAddress NetAddress
	var devices, storageDirs, categories listValue
	var requestTimeout, discoveryInterval, latency time.Duration
	var databaseDSN, jsonConfigPath, clientName, filter, logFile string
	var auth, manufacturer, model, serial string
	var slots int
	var eagerMetadata, reportCatalog bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&devices, "devices", "Comma separated device addresses")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Thumbnail cache database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&discoveryInterval, "discovery-interval", 0, "Pause between discovery rounds")
	fs.StringVar(&clientName, "client-name", "", "Client name")
	fs.StringVar(&filter, "filter", "", "Scan filter: images or all")
	fs.IntVar(&slots, "slots", 0, "Number of browser rows")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.Var(&storageDirs, "storage", "Comma separated storage directories")
	fs.Var(&categories, "categories", "Comma separated command categories")
	fs.DurationVar(&latency, "latency", 0, "Artificial latency per filesystem command")
	fs.BoolVar(&eagerMetadata, "eager-metadata", false, "List files with metadata loaded")
	fs.BoolVar(&reportCatalog, "report-catalog", false, "Report per-storage folder counts")
	fs.StringVar(&auth, "auth", "", "Pairing method kind[:argument]")
	fs.StringVar(&manufacturer, "manufacturer", "", "Simulated manufacturer")
	fs.StringVar(&model, "model", "", "Simulated model")
	fs.StringVar(&serial, "serial", "", "Simulated serial number")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			Addresses:      devices,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Discovery: Discovery{
			Interval:   discoveryInterval,
			ClientName: clientName,
		},
		Scan: Scan{
			Filter: filter,
			Slots:  slots,
		},
		Log: Log{File: logFile},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Device: Device{
			Manufacturer:  manufacturer,
			Model:         model,
			Serial:        serial,
			StorageDirs:   storageDirs,
			Categories:    categories,
			Latency:       latency,
			EagerMetadata: eagerMetadata,
			ReportCatalog: reportCatalog,
			Auth:          auth,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. An empty host listens on all interfaces; otherwise
// the host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
