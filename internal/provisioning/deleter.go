package provisioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/steelops/scmctl/internal/platform/scm"
	"github.com/steelops/scmctl/internal/ui/prompt"
)

// DefaultProtectedSite is never deleted by the bulk deletion workflow.
const DefaultProtectedSite = "DC-Sydney"

// ErrAborted is returned when the operator declines a confirmation.
var ErrAborted = errors.New("aborted by operator")

// Deleter removes every site of an organization except the protected one,
// after double confirmation.
type Deleter struct {
	api       scm.SiteManager
	prompter  prompt.Prompter
	obs       Observer
	protected string
}

// NewDeleter creates a deletion workflow. An empty protected name falls
// back to DefaultProtectedSite.
func NewDeleter(api scm.SiteManager, prompter prompt.Prompter, obs Observer, protected string) *Deleter {
	if protected == "" {
		protected = DefaultProtectedSite
	}
	return &Deleter{api: api, prompter: prompter, obs: obs, protected: protected}
}

// Run deletes the given sites minus the protected one. Declining either
// confirmation returns ErrAborted with nothing deleted. A 404 means the
// site disappeared since the listing and is skipped; any other rejected
// DELETE is reported and the loop continues; a transport failure aborts.
func (d *Deleter) Run(ctx context.Context, sites []scm.Site) error {
	var doomed []scm.Site
	for _, site := range sites {
		if site.Name == d.protected {
			d.obs.Printf("\n* %s found, not deleting that one.\n", d.protected)
			continue
		}
		doomed = append(doomed, site)
	}

	if len(doomed) == 0 {
		d.obs.Printf("Nothing to delete.")
		return nil
	}

	ok, err := d.prompter.Confirm(ctx, "Are you sure you want to delete all sites?")
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	ok, err = d.prompter.Confirm(ctx, "Are you really sure? THIS CAN NOT BE UNDONE!")
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	for _, site := range doomed {
		err := d.api.DeleteSite(ctx, site.ID)
		if scm.IsNotFound(err) {
			// Deleted out from under us since the listing; nothing to do.
			d.obs.Printf("* %s already gone.", site.Name)
			continue
		}
		d.obs.Call(fmt.Sprintf("Deleting site %s", site.Name), err)
		if err != nil && !scm.IsRemoteRejection(err) {
			return err
		}
	}
	d.obs.Printf("All done!")
	return nil
}
