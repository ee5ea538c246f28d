// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Service != "github" {
		t.Errorf("Service = %s, want github", cfg.Service)
	}
	if cfg.Token != "" {
		t.Errorf("Token = %q, want empty", cfg.Token)
	}
	if cfg.EndpointFor("github") != "" {
		t.Errorf("EndpointFor(github) = %q, want empty", cfg.EndpointFor("github"))
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
service: gitlab
token: fallback-token

tokens:
  github: gh-token
  bitbucket: user:app-password

endpoints:
  github: https://github.enterprise.com/api/v3
  gitlab: https://gitlab.internal.example.com
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Service != "gitlab" {
		t.Errorf("Service = %s, want gitlab", cfg.Service)
	}
	if cfg.EndpointFor("github") != "https://github.enterprise.com/api/v3" {
		t.Errorf("EndpointFor(github) = %s", cfg.EndpointFor("github"))
	}
	if cfg.EndpointFor("bitbucket") != "" {
		t.Errorf("EndpointFor(bitbucket) = %q, want empty", cfg.EndpointFor("bitbucket"))
	}
}

// The per-service token wins over the fallback; services without their own
// entry fall back to the shared token.
func TestTokenFor(t *testing.T) {
	cfg := &Config{
		Token:  "fallback",
		Tokens: map[string]string{"github": "gh-token", "gitlab": ""},
	}

	if got := cfg.TokenFor("github"); got != "gh-token" {
		t.Errorf("TokenFor(github) = %q, want gh-token", got)
	}
	if got := cfg.TokenFor("gitlab"); got != "fallback" {
		t.Errorf("TokenFor(gitlab) = %q, want fallback", got)
	}
	if got := cfg.TokenFor("bitbucket"); got != "fallback" {
		t.Errorf("TokenFor(bitbucket) = %q, want fallback", got)
	}
}

func TestServiceEnvOverride(t *testing.T) {
	t.Setenv("EPR_SERVICE", "bitbucket")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist-so-use-defaults.yaml"))
	if err == nil {
		t.Fatal("Load of a missing explicit path should fail")
	}

	// Discovery mode with no file present: defaults plus env override.
	tmp := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
	t.Setenv("HOME", tmp)
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service != "bitbucket" {
		t.Errorf("Service = %s, want bitbucket (from EPR_SERVICE)", cfg.Service)
	}
}

func TestLoadDiscoversLocalFile(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".epr.yaml"), []byte("service: gitlab\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
	t.Setenv("HOME", tmp)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service != "gitlab" {
		t.Errorf("Service = %s, want gitlab", cfg.Service)
	}
}

func TestValidate(t *testing.T) {
	for _, service := range []string{"github", "gitlab", "bitbucket"} {
		cfg := &Config{Service: service}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%s) error: %v", service, err)
		}
	}

	cfg := &Config{Service: "gitea"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate(gitea) error = nil, want error")
	}
}
