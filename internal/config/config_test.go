package config

import (
	"os"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	os.Unsetenv("STORE_CAPACITY")
	os.Unsetenv("COUNTER_WORKERS")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.StoreCapacity != 100 {
		t.Errorf("expected default StoreCapacity 100, got %d", cfg.StoreCapacity)
	}
	if cfg.CounterWorkers != 10 {
		t.Errorf("expected default CounterWorkers 10, got %d", cfg.CounterWorkers)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("STORE_CAPACITY", "500")
	os.Setenv("COUNTER_WORKERS", "4")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "text")
	defer func() {
		os.Unsetenv("STORE_CAPACITY")
		os.Unsetenv("COUNTER_WORKERS")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_FORMAT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.StoreCapacity != 500 {
		t.Errorf("expected StoreCapacity 500, got %d", cfg.StoreCapacity)
	}
	if cfg.CounterWorkers != 4 {
		t.Errorf("expected CounterWorkers 4, got %d", cfg.CounterWorkers)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel 'debug', got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected LogFormat 'text', got %s", cfg.LogFormat)
	}
}

func TestLoad_InvalidCapacity(t *testing.T) {
	os.Setenv("STORE_CAPACITY", "-1")
	defer os.Unsetenv("STORE_CAPACITY")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative STORE_CAPACITY, got nil")
	}
}

func TestLoad_InvalidWorkers(t *testing.T) {
	os.Setenv("COUNTER_WORKERS", "-3")
	defer os.Unsetenv("COUNTER_WORKERS")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative COUNTER_WORKERS, got nil")
	}
}

func TestLoad_MalformedInt(t *testing.T) {
	os.Setenv("STORE_CAPACITY", "lots")
	defer os.Unsetenv("STORE_CAPACITY")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric STORE_CAPACITY, got nil")
	}
}
