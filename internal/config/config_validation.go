// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// minCookieHashKeyLen is the shortest accepted HMAC key for session cookies.
const minCookieHashKeyLen = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if len(cfg.App.CookieHashKey) < minCookieHashKeyLen || cfg.App.SessionTTL <= 0 || cfg.App.InvitationTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	switch len(cfg.App.CookieBlockKey) {
	case 0, 16, 24, 32:
	default:
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.HealthBaseURL != "" && (cfg.Adapter.HealthTokenURL == "" || cfg.Adapter.RequestTimeout <= 0) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 || cfg.Workers.HealthSyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
