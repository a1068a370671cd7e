package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. Durations accept either
// Go duration strings ("10s") or nanosecond numbers.
type StructuredJSONConfig struct {
	Adapter struct {
		Addresses      []string `json:"addresses"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Discovery struct {
		Interval   Duration `json:"interval"`
		ClientName string   `json:"client_name"`
	} `json:"discovery"`

	Scan struct {
		Filter string `json:"filter"`
		Slots  int    `json:"slots"`
	} `json:"scan"`

	Log struct {
		File string `json:"file"`
	} `json:"log"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Device struct {
		Manufacturer  string   `json:"manufacturer"`
		Model         string   `json:"model"`
		Serial        string   `json:"serial"`
		StorageDirs   []string `json:"storage_dirs"`
		Categories    []string `json:"categories"`
		Latency       Duration `json:"latency"`
		EagerMetadata bool     `json:"eager_metadata"`
		ReportCatalog bool     `json:"report_catalog"`
		Auth          string   `json:"auth"`
	} `json:"device"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			Addresses:      jsonCfg.Adapter.Addresses,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Discovery: Discovery{
			Interval:   time.Duration(jsonCfg.Discovery.Interval),
			ClientName: jsonCfg.Discovery.ClientName,
		},
		Scan: Scan{
			Filter: jsonCfg.Scan.Filter,
			Slots:  jsonCfg.Scan.Slots,
		},
		Log: Log{File: jsonCfg.Log.File},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Device: Device{
			Manufacturer:  jsonCfg.Device.Manufacturer,
			Model:         jsonCfg.Device.Model,
			Serial:        jsonCfg.Device.Serial,
			StorageDirs:   jsonCfg.Device.StorageDirs,
			Categories:    jsonCfg.Device.Categories,
			Latency:       time.Duration(jsonCfg.Device.Latency),
			EagerMetadata: jsonCfg.Device.EagerMetadata,
			ReportCatalog: jsonCfg.Device.ReportCatalog,
			Auth:          jsonCfg.Device.Auth,
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from strings like "1h" or "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
