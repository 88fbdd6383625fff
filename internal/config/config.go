// Package config provides run configuration for scmctl: the target
// controller and organization, credentials, and HTTP tuning. Values come
// from flags first, then environment variables (with a .env autoload),
// then an optional scmctl.yaml defaults file, then interactive prompting.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/steelops/scmctl/internal/ui/prompt"
)

// Environment variables recognized for credentials.
const (
	EnvUsername = "SCM_USERNAME"
	EnvPassword = "SCM_PASSWORD"
)

// Config holds everything a workflow run needs to reach the controller.
type Config struct {
	Controller   string
	Organization string
	Username     string
	Password     string
}

// New builds a run configuration from the two CLI positionals. The
// original tools accepted the positionals in either order as long as the
// controller hostname ends in ".cc"; that convenience is preserved.
func New(controller, organization string) *Config {
	if strings.HasSuffix(organization, ".cc") && !strings.HasSuffix(controller, ".cc") {
		controller, organization = organization, controller
	}
	return &Config{Controller: controller, Organization: organization}
}

// ResolveCredentials fills in Username and Password, trying in order: the
// values already set (from flags), the SCM_USERNAME/SCM_PASSWORD
// environment (a .env file in the working directory is honored), and
// finally the interactive prompter.
func (c *Config) ResolveCredentials(ctx context.Context, p prompt.Prompter) error {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if c.Username == "" {
		c.Username = os.Getenv(EnvUsername)
	}
	if c.Password == "" {
		c.Password = os.Getenv(EnvPassword)
	}

	if c.Username == "" {
		username, err := p.Username(ctx)
		if err != nil {
			return err
		}
		c.Username = username
	}
	if c.Password == "" {
		password, err := p.Password(ctx, c.Username)
		if err != nil {
			return err
		}
		c.Password = password
	}
	return nil
}

// Validate checks the configuration is complete enough to start a run.
func (c *Config) Validate() error {
	if c.Controller == "" {
		return fmt.Errorf("controller hostname is required")
	}
	if c.Organization == "" {
		return fmt.Errorf("organization is required")
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("credentials are required")
	}
	return nil
}
