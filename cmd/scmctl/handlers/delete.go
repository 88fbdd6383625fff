package handlers

import (
	"context"
	"fmt"

	"github.com/steelops/scmctl/internal/catalog"
	"github.com/steelops/scmctl/internal/provisioning"
)

// DeleteOptions carry the delete-sites command inputs.
type DeleteOptions struct {
	Controller   string
	Organization string
	Username     string
	Password     string
	Keep         string
}

// DeleteSites handles the delete-sites command.
//
// It resolves the organization, lists its sites, and deletes everything
// except the protected site after the operator confirms twice.
func DeleteSites(ctx context.Context, opts DeleteOptions) error {
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

	sites, err := resolver.FindSites(ctx, org.ID)
	if err != nil {
		return fmt.Errorf("listing sites: %w", err)
	}
	obs.Printf(provisioning.FoundStatus("site", len(sites), "in this organization"))

	d := provisioning.NewDeleter(api, &lazyPrompter{}, obs, opts.Keep)
	return d.Run(ctx, sites)
}
