package commands

import (
	"github.com/spf13/cobra"

	"github.com/steelops/scmctl/cmd/scmctl/handlers"
)

// Import returns the import command.
//
// The import command reads a CSV site description and provisions the
// matching objects on the controller: one site per row, plus the zone,
// uplink, and network updates derived from the row's fields.
func Import() *cobra.Command {
	var opts handlers.ImportOptions

	cmd := &cobra.Command{
		Use:   "import [controller] [organization]",
		Short: "Bulk-import sites, uplinks, and zones from a CSV file",
		Long: `Import reads a CSV site description and creates the matching objects
on the SteelConnect Manager.

For every row the importer creates a site, then renames its default zone,
sets the zone's subnet, and configures the uplinks:
  - an uplink for the organization's custom WAN when the row's wan_name
    matches it
  - a static address on the implicit Internet uplink unless internet_ip
    is "dhcp"

The CSV header must carry the columns:
  name,longname,tags,street_address,city,country,timezone,zone_name,
  zone_ip,vlan,internet_ip,internet_gw,wan_name,wan_ip,wan_gw

wan_name needs to match an existing WAN name on the controller.

Credentials come from -u/-p, the SCM_USERNAME/SCM_PASSWORD environment,
or an interactive prompt. Controller and organization may also be set in
an scmctl.yaml defaults file.

Example:
  scmctl import scm.riverbed.cc Acme -f sites.csv`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Controller = args[0]
			}
			if len(args) > 1 {
				opts.Organization = args[1]
			}
			return handlers.Import(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "Username for the controller: prompted if not supplied")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Password for the controller: prompted if not supplied")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "CSV file to import (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
