package handlers

import (
	"context"
	"fmt"

	"github.com/steelops/scmctl/internal/catalog"
	"github.com/steelops/scmctl/internal/provisioning"
)

// ImportOptions carry the import command inputs.
type ImportOptions struct {
	Controller   string
	Organization string
	Username     string
	Password     string
	File         string
}

// Import handles the import command.
//
// It reads the site CSV, resolves the organization and its WANs on the
// controller, and provisions every row: site, uplinks, default zone and
// network. Rows rejected by the controller are reported and skipped;
// connectivity failures abort the run.
func Import(ctx context.Context, opts ImportOptions) error {
	rows, err := readSiteFile(opts.File)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(ctx, opts.Controller, opts.Organization, opts.Username, opts.Password)
	if err != nil {
		return err
	}

	api := newControllerClient(cfg, loadTimeouts())
	resolver := catalog.NewResolver(api)
	obs := newObserver()

	obs.Printf("Finding organization %q on %s ...", cfg.Organization, cfg.Controller)
	org, err := resolver.FindOrg(ctx, cfg.Organization)
	if err != nil {
		return err
	}
	obs.Printf("* id:   %s", org.ID)
	obs.Printf("* name: %s", org.Longname)

	wans, err := resolver.FindWANs(ctx, org.ID)
	if err != nil {
		return fmt.Errorf("resolving WANs: %w", err)
	}

	obs.Printf(provisioning.FoundStatus("row", len(rows), "in "+opts.File))

	// Rejected rows are already reported in the summary; they do not fail
	// the run. Only transport failures and rejected reads do.
	p := provisioning.NewProvisioner(api, org.ID, wans, obs)
	_, err = provisioning.RunImport(ctx, p, rows, obs)
	return err
}
