package config

import "testing"

func TestLoadRequiresAAPValues(t *testing.T) {
	t.Setenv("AAP_URL", "")
	t.Setenv("AAP_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when AAP_URL and AAP_TOKEN are unset")
	}

	t.Setenv("AAP_URL", "https://aap.example.com/api/v2")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when AAP_TOKEN is unset")
	}

	t.Setenv("AAP_TOKEN", "tok")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AAPURL != "https://aap.example.com/api/v2" || cfg.AAPToken != "tok" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AAP_URL", "https://aap.example.com")
	t.Setenv("AAP_TOKEN", "tok")
	t.Setenv("VERIFY_SSL", "")
	t.Setenv("GROK_API_ENDPOINT", "")
	t.Setenv("GROK_API_KEY", "")
	t.Setenv("LISTEN_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.VerifySSL {
		t.Fatal("VerifySSL must default to true")
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr: %s", cfg.ListenAddr)
	}
	if cfg.GrokEndpoint != "" || cfg.GrokKey != "" {
		t.Fatalf("grok config should be empty: %+v", cfg)
	}
}

func TestParseVerifySSL(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"true", true},
		{"yes", true},
		{"1", true},
		{"anything", true},
		{"false", false},
		{"FALSE", false},
		{"False", false},
		{"0", false},
		{"no", false},
		{"NO", false},
	}
	for _, tc := range cases {
		if got := parseVerifySSL(tc.value); got != tc.want {
			t.Fatalf("parseVerifySSL(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
