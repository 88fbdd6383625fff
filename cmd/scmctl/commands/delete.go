package commands

import (
	"github.com/spf13/cobra"

	"github.com/steelops/scmctl/cmd/scmctl/handlers"
	"github.com/steelops/scmctl/internal/provisioning"
)

// DeleteSites returns the delete-sites command.
//
// The command enumerates all sites of an organization, spares the
// protected one, and deletes the rest after asking for confirmation
// twice.
func DeleteSites() *cobra.Command {
	var opts handlers.DeleteOptions

	cmd := &cobra.Command{
		Use:   "delete-sites [controller] [organization]",
		Short: "Delete all sites of an organization except the protected one",
		Long: `Delete-sites removes every site of an organization from the
SteelConnect Manager except the protected site (default "` + provisioning.DefaultProtectedSite + `",
override with --keep).

The operator is asked for confirmation twice before anything is deleted;
answering "n" at either prompt aborts with nothing removed.

Example:
  scmctl delete-sites scm.riverbed.cc Acme --keep DC-Sydney

WARNING: This operation is irreversible.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Controller = args[0]
			}
			if len(args) > 1 {
				opts.Organization = args[1]
			}
			return handlers.DeleteSites(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "Username for the controller: prompted if not supplied")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Password for the controller: prompted if not supplied")
	cmd.Flags().StringVar(&opts.Keep, "keep", provisioning.DefaultProtectedSite, "Site name to protect from deletion")

	return cmd
}
