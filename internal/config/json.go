package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations. Kept separate so the wire format of the config
// file can evolve independently of the in-process representation.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`
}

// ClientJSONConfig mirrors [ClientConfig] for the client config file.
type ClientJSONConfig struct {
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Auth struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	} `json:"auth,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		App: App{
			Version: jsonCfg.App.Version,
		},
	}

	return cfg, nil
}

func parseClientJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg ClientJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Auth: ClientAuth{
			Login:    jsonCfg.Auth.Login,
			Password: jsonCfg.Auth.Password,
		},
		Workers: ClientWorkers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// mergeClientConfig copies non-zero fields of src into zero fields of dst.
// Environment values win over the JSON file, mirroring the server merge
// order.
func mergeClientConfig(dst, src *ClientConfig) {
	if dst.Adapter.BaseURL == "" {
		dst.Adapter.BaseURL = src.Adapter.BaseURL
	}
	if dst.Adapter.RequestTimeout == 0 {
		dst.Adapter.RequestTimeout = src.Adapter.RequestTimeout
	}
	if dst.Storage.DB.DSN == "" {
		dst.Storage.DB.DSN = src.Storage.DB.DSN
	}
	if dst.Auth.Login == "" {
		dst.Auth.Login = src.Auth.Login
	}
	if dst.Auth.Password == "" {
		dst.Auth.Password = src.Auth.Password
	}
	if dst.Workers.SyncInterval == 0 {
		dst.Workers.SyncInterval = src.Workers.SyncInterval
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
