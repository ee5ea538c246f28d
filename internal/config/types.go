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

// Config holds all tool settings loaded from a config file, with
// environment variable overrides applied on top. Lifecycle is process-scoped
// and read-only after Load.
type Config struct {
	// Service is the default provider when the --provider flag is not given.
	Service string `yaml:"service"`

	// Token is the fallback API token, used when no per-service token is
	// configured for the selected service.
	Token string `yaml:"token"`

	// Tokens maps service names to API tokens, so one config file can hold
	// credentials for several services at once.
	Tokens map[string]string `yaml:"tokens"`

	// Endpoints overrides the API base URLs, for GitHub Enterprise or
	// self-hosted GitLab deployments. Empty values use the service default.
	Endpoints EndpointConfig `yaml:"endpoints"`
}

// EndpointConfig holds per-service API base URL overrides.
type EndpointConfig struct {
	GitHub    string `yaml:"github"`
	GitLab    string `yaml:"gitlab"`
	Bitbucket string `yaml:"bitbucket"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Service: "github",
	}
}

// TokenFor returns the configured token for a service: the per-service entry
// first, then the fallback token. Returns "" when neither is set.
func (c *Config) TokenFor(service string) string {
	if token, ok := c.Tokens[service]; ok && token != "" {
		return token
	}
	return c.Token
}

// EndpointFor returns the configured API base URL override for a service,
// or "" when the service default should be used.
func (c *Config) EndpointFor(service string) string {
	switch service {
	case "github":
		return c.Endpoints.GitHub
	case "gitlab":
		return c.Endpoints.GitLab
	case "bitbucket":
		return c.Endpoints.Bitbucket
	}
	return ""
}
