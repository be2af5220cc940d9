package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		SessionTTL     Duration `json:"session_ttl"`
		InvitationTTL  Duration `json:"invitation_ttl"`
		CookieHashKey  string   `json:"cookie_hash_key"`
		CookieBlockKey string   `json:"cookie_block_key"`
		SecureCookies  bool     `json:"secure_cookies"`
		PublicURL      string   `json:"public_url"`
		LogLevel       string   `json:"log_level"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Cache struct {
			Address    string   `json:"address"`
			Password   string   `json:"password"`
			DB         int      `json:"db"`
			SummaryTTL Duration `json:"summary_ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HealthBaseURL      string   `json:"health_base_url"`
		HealthTokenURL     string   `json:"health_token_url"`
		HealthClientID     string   `json:"health_client_id"`
		HealthClientSecret string   `json:"health_client_secret"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
		HealthSyncInterval     Duration `json:"health_sync_interval"`
	} `json:"workers,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			SessionTTL:     time.Duration(jsonCfg.App.SessionTTL),
			InvitationTTL:  time.Duration(jsonCfg.App.InvitationTTL),
			CookieHashKey:  jsonCfg.App.CookieHashKey,
			CookieBlockKey: jsonCfg.App.CookieBlockKey,
			SecureCookies:  jsonCfg.App.SecureCookies,
			PublicURL:      jsonCfg.App.PublicURL,
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				Address:    jsonCfg.Storage.Cache.Address,
				Password:   jsonCfg.Storage.Cache.Password,
				DB:         jsonCfg.Storage.Cache.DB,
				SummaryTTL: time.Duration(jsonCfg.Storage.Cache.SummaryTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HealthBaseURL:      jsonCfg.Adapter.HealthBaseURL,
			HealthTokenURL:     jsonCfg.Adapter.HealthTokenURL,
			HealthClientID:     jsonCfg.Adapter.HealthClientID,
			HealthClientSecret: jsonCfg.Adapter.HealthClientSecret,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(jsonCfg.Workers.SessionCleanupInterval),
			HealthSyncInterval:     time.Duration(jsonCfg.Workers.HealthSyncInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
