// Package handlers contains the logic behind the scmctl commands. The
// commands package owns flag parsing and help text; handlers own the
// wiring from configuration to the controller client and the workflows,
// and are testable by swapping the factory function variables below.
package handlers

import (
	"context"
	"net/http"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/steelops/scmctl/internal/config"
	"github.com/steelops/scmctl/internal/platform/scm"
	"github.com/steelops/scmctl/internal/provisioning"
	"github.com/steelops/scmctl/internal/sitefile"
	"github.com/steelops/scmctl/internal/ui/prompt"
)

// Factory function variables - can be replaced in tests.
var (
	// newControllerClient builds the controller API client for a run.
	newControllerClient = func(cfg *config.Config, t *config.Timeouts) scm.ControllerAPI {
		return scm.NewRealClient(cfg.Controller, cfg.Username, cfg.Password,
			scm.WithHTTPClient(&http.Client{Timeout: t.HTTPRequest}),
			scm.WithRetry(t.RetryMaxAttempts, t.RetryInitialDelay),
			scm.WithLogger(newLogger()),
		)
	}

	// newPrompter creates the interactive terminal prompter.
	newPrompter = func() (prompt.Prompter, error) {
		return prompt.NewTerminal()
	}

	// newObserver creates the operator-facing progress reporter.
	newObserver = func() provisioning.Observer {
		return provisioning.NewConsoleObserver()
	}

	findDefaults = config.FindDefaults
	loadTimeouts = config.LoadTimeouts
	readSiteFile = sitefile.ReadFile
)

func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "scmctl",
		Level: hclog.LevelFromString(os.Getenv("SCM_LOG_LEVEL")),
	})
}

// lazyPrompter defers terminal detection until a prompt is actually
// needed, so fully flag- or env-driven runs work without a TTY.
type lazyPrompter struct {
	p   prompt.Prompter
	err error
}

func (l *lazyPrompter) get() (prompt.Prompter, error) {
	if l.p == nil && l.err == nil {
		l.p, l.err = newPrompter()
	}
	return l.p, l.err
}

func (l *lazyPrompter) Username(ctx context.Context) (string, error) {
	p, err := l.get()
	if err != nil {
		return "", err
	}
	return p.Username(ctx)
}

func (l *lazyPrompter) Password(ctx context.Context, username string) (string, error) {
	p, err := l.get()
	if err != nil {
		return "", err
	}
	return p.Password(ctx, username)
}

func (l *lazyPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	p, err := l.get()
	if err != nil {
		return false, err
	}
	return p.Confirm(ctx, question)
}

// resolveConfig assembles the run configuration from CLI positionals,
// flags, the optional scmctl.yaml defaults file, the environment, and
// finally interactive prompts.
func resolveConfig(ctx context.Context, controller, organization, username, password string) (*config.Config, error) {
	cfg := config.New(controller, organization)
	cfg.Username = username
	cfg.Password = password

	defaults, err := findDefaults()
	if err != nil {
		return nil, err
	}
	defaults.Apply(cfg)

	if err := cfg.ResolveCredentials(ctx, &lazyPrompter{}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
