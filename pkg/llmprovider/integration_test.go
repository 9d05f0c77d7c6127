package llmprovider_test

import (
	"errors"
	"testing"

	"personal-agent/config"
	"personal-agent/pkg/llmprovider"
)

func TestInitializeProviders_PriorityOrder(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-2.5-flash"},
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("providers = %d, want 2", len(providers))
	}
	if providers[0].Name() != "deepseek" || providers[1].Name() != "gemini" {
		t.Errorf("order = %s, %s; want deepseek, gemini", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_SkipsDisabled(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: false, Priority: 1, APIKey: "k", Model: "m"},
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "deepseek" {
		t.Errorf("want only deepseek, got %d provider(s)", len(providers))
	}
}

func TestInitializeProviders_AllDisabled(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: false, Priority: 1, APIKey: "k", Model: "m"},
		},
	}

	_, err := llmprovider.InitializeProviders(cfg)
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Fatalf("err = %v, want ErrNoProvidersConfigured", err)
	}
}

func TestInitializeProviders_SkipsBrokenEntries(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}, // no API key
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "deepseek" {
		t.Errorf("want broken gemini entry skipped, got %d provider(s)", len(providers))
	}
}

func TestInitializeProviders_UnknownProvider(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
		},
	}

	if _, err := llmprovider.InitializeProviders(cfg); err == nil {
		t.Fatal("want error when no provider can be constructed")
	}
}

func TestInitializeProviders_NilConfig(t *testing.T) {
	if _, err := llmprovider.InitializeProviders(nil); err == nil {
		t.Fatal("want error on nil config")
	}
}
