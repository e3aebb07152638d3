package config

import (
	"fmt"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/sustainassess/pkg/envvar"
)

const (
	EnvAgentProviderName = "SUSTAINASSESS_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "SUSTAINASSESS_AGENT_BASE_URL"
	EnvAgentToken        = "SUSTAINASSESS_AGENT_TOKEN"
	EnvAgentDeployment   = "SUSTAINASSESS_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "SUSTAINASSESS_AGENT_API_VERSION"
	EnvAgentAuthType     = "SUSTAINASSESS_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "SUSTAINASSESS_AGENT_MODEL_NAME"
)

// FinalizeAgent fills c from go-agents defaults, applies SUSTAINASSESS_AGENT_*
// overrides, and validates the result. The configured model is the template
// each narrative fallback link clones with its own model name.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults

	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}

	envvar.String(&c.Provider.Name, EnvAgentProviderName)
	envvar.String(&c.Provider.BaseURL, EnvAgentBaseURL)
	envvar.String(&c.Model.Name, EnvAgentModelName)

	for env, key := range map[string]string{
		EnvAgentToken:      "token",
		EnvAgentDeployment: "deployment",
		EnvAgentAPIVersion: "api_version",
		EnvAgentAuthType:   "auth_type",
	} {
		var v string
		envvar.String(&v, env)
		if v != "" {
			c.Provider.Options[key] = v
		}
	}

	switch {
	case c.Name == "":
		return fmt.Errorf("name required")
	case c.Provider.Name == "":
		return fmt.Errorf("provider name required")
	}
	return nil
}
