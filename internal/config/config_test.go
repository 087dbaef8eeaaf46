package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 0},
		Database: DatabaseConfig{DSN: "postgres://localhost:5432/listings"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database dsn")
	}
}

func TestValidate_CacheEnabledWithoutAddrs(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{DSN: "postgres://localhost:5432/listings"},
		Cache:    CacheConfig{Enabled: true},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for enabled cache without addrs")
	}
}

func TestValidate_PageSizeOrdering(t *testing.T) {
	cfg := Config{
		HTTP:       HTTPConfig{Port: 8080},
		Database:   DatabaseConfig{DSN: "postgres://localhost:5432/listings"},
		Pagination: PaginationConfig{DefaultPageSize: 200, MaxPageSize: 100},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Cache.SearchTTLSec != 180 {
		t.Errorf("expected SearchTTLSec=180, got %d", cfg.Cache.SearchTTLSec)
	}
	if cfg.Cache.DetailTTLSec != 300 {
		t.Errorf("expected DetailTTLSec=300, got %d", cfg.Cache.DetailTTLSec)
	}
	if cfg.Cache.MapTTLSec != 60 {
		t.Errorf("expected MapTTLSec=60, got %d", cfg.Cache.MapTTLSec)
	}
	if cfg.Pagination.DefaultPageSize != 20 {
		t.Errorf("expected DefaultPageSize=20, got %d", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Pagination.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Pagination.MaxPageSize)
	}
	if cfg.Pagination.MapLimit != 500 {
		t.Errorf("expected MapLimit=500, got %d", cfg.Pagination.MapLimit)
	}
	if cfg.Pagination.MaxMapLimit != 1000 {
		t.Errorf("expected MaxMapLimit=1000, got %d", cfg.Pagination.MaxMapLimit)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:       HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database:   DatabaseConfig{MaxConns: 25, ReadinessTimeout: 15},
		Cache:      CacheConfig{SearchTTLSec: 60, DetailTTLSec: 600, MapTTLSec: 30},
		Pagination: PaginationConfig{DefaultPageSize: 50, MaxPageSize: 500},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("expected MaxConns=25, got %d", cfg.Database.MaxConns)
	}
	if cfg.Cache.SearchTTLSec != 60 {
		t.Errorf("expected SearchTTLSec=60, got %d", cfg.Cache.SearchTTLSec)
	}
	if cfg.Pagination.DefaultPageSize != 50 {
		t.Errorf("expected DefaultPageSize=50, got %d", cfg.Pagination.DefaultPageSize)
	}
}
