package handlers

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelops/scmctl/internal/catalog"
	"github.com/steelops/scmctl/internal/config"
	"github.com/steelops/scmctl/internal/platform/scm"
	"github.com/steelops/scmctl/internal/provisioning"
	"github.com/steelops/scmctl/internal/sitefile"
	"github.com/steelops/scmctl/internal/ui/prompt"
)

// swapFactories replaces every factory variable for the duration of a
// test and restores the originals afterwards.
func swapFactories(t *testing.T, api scm.ControllerAPI, p prompt.Prompter, rows []sitefile.Row) {
	t.Helper()
	origClient := newControllerClient
	origPrompter := newPrompter
	origObserver := newObserver
	origDefaults := findDefaults
	origTimeouts := loadTimeouts
	origReader := readSiteFile
	t.Cleanup(func() {
		newControllerClient = origClient
		newPrompter = origPrompter
		newObserver = origObserver
		findDefaults = origDefaults
		loadTimeouts = origTimeouts
		readSiteFile = origReader
	})

	newControllerClient = func(_ *config.Config, _ *config.Timeouts) scm.ControllerAPI { return api }
	newPrompter = func() (prompt.Prompter, error) {
		if p == nil {
			return nil, errors.New("no terminal in tests")
		}
		return p, nil
	}
	newObserver = func() provisioning.Observer { return &provisioning.ConsoleObserver{Out: io.Discard} }
	findDefaults = func() (*config.Defaults, error) { return &config.Defaults{}, nil }
	loadTimeouts = config.LoadTimeouts
	readSiteFile = func(_ string) ([]sitefile.Row, error) { return rows, nil }
}

func acmeOrgAPI() *scm.MockClient {
	return &scm.MockClient{
		ListOrgsFunc: func(_ context.Context) ([]scm.Org, error) {
			return []scm.Org{{ID: "org-1", Name: "Acme", Longname: "Acme Pty Ltd"}}, nil
		},
		ListWANsFunc: func(_ context.Context, _ string) ([]scm.WAN, error) {
			return []scm.WAN{
				{ID: "wan-int", Name: catalog.WANInternet},
				{ID: "wan-vpn", Name: catalog.WANRouteVPN},
			}, nil
		},
	}
}

func importOpts() ImportOptions {
	return ImportOptions{
		Controller:   "scm.riverbed.cc",
		Organization: "Acme",
		Username:     "admin",
		Password:     "hunter2",
		File:         "sites.csv",
	}
}

func TestImportProvisionsEveryRow(t *testing.T) {
	api := acmeOrgAPI()
	var created []string
	var networks []scm.NetworkPayload
	api.CreateSiteFunc = func(_ context.Context, orgID string, p scm.SitePayload) (*scm.Site, error) {
		created = append(created, p.Name)
		require.Equal(t, "org-1", orgID)
		return &scm.Site{ID: "site-" + p.Name, Org: orgID, Name: p.Name}, nil
	}
	api.ListZonesFunc = func(_ context.Context, siteID string) ([]scm.Zone, error) {
		return []scm.Zone{{ID: "zone-1", Site: siteID, Networks: []string{"net-1"}}}, nil
	}
	api.ListUplinksFunc = func(_ context.Context, siteID string) ([]scm.Uplink, error) {
		return []scm.Uplink{{ID: "up-1", Site: siteID, WAN: "ref:wan-int"}}, nil
	}
	api.UpdateNetworkFunc = func(_ context.Context, _ string, p scm.NetworkPayload) error {
		networks = append(networks, p)
		return nil
	}

	rows := []sitefile.Row{
		{Name: "BR-Oslo", ZoneName: "LAN", ZoneIP: "10.1.0.0/24", InternetIP: "dhcp"},
		{Name: "BR-Bergen", ZoneName: "LAN", ZoneIP: "10.2.0.0/24", InternetIP: "dhcp"},
	}
	swapFactories(t, api, nil, rows)

	err := Import(context.Background(), importOpts())
	require.NoError(t, err)
	assert.Equal(t, []string{"BR-Oslo", "BR-Bergen"}, created)
	require.Len(t, networks, 2)
	assert.Equal(t, []string{"wan-vpn"}, networks[0].WANs)
}

func TestImportRejectedRowDoesNotFailRun(t *testing.T) {
	api := acmeOrgAPI()
	api.CreateSiteFunc = func(_ context.Context, _ string, _ scm.SitePayload) (*scm.Site, error) {
		return nil, &scm.APIError{Status: 400, Code: 600, Message: "duplicate site name"}
	}
	rows := []sitefile.Row{{Name: "BR-Oslo", InternetIP: "dhcp"}}
	swapFactories(t, api, nil, rows)

	// A rejected write is reported per row; the run still exits clean.
	err := Import(context.Background(), importOpts())
	require.NoError(t, err)
}

func TestImportTransportFailureIsFatal(t *testing.T) {
	api := acmeOrgAPI()
	api.CreateSiteFunc = func(_ context.Context, _ string, _ scm.SitePayload) (*scm.Site, error) {
		return nil, &scm.TransportError{Op: "POST", URL: "https://scm.riverbed.cc", Err: errors.New("connection reset")}
	}
	rows := []sitefile.Row{{Name: "BR-Oslo", InternetIP: "dhcp"}}
	swapFactories(t, api, nil, rows)

	err := Import(context.Background(), importOpts())
	require.Error(t, err)
	assert.True(t, scm.IsTransport(err))
}

func TestImportUnknownOrganization(t *testing.T) {
	api := acmeOrgAPI()
	swapFactories(t, api, nil, nil)

	opts := importOpts()
	opts.Organization = "Globex"
	err := Import(context.Background(), opts)
	require.Error(t, err)
	var nf *catalog.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Globex", nf.Name)
}

func TestImportSiteFileErrorComesFirst(t *testing.T) {
	api := acmeOrgAPI()
	swapFactories(t, api, nil, nil)
	readSiteFile = func(_ string) ([]sitefile.Row, error) {
		return nil, errors.New(`missing column "tags"`)
	}

	err := Import(context.Background(), importOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestImportWithoutCredentialsNeedsTerminal(t *testing.T) {
	t.Setenv(config.EnvUsername, "")
	t.Setenv(config.EnvPassword, "")
	api := acmeOrgAPI()
	swapFactories(t, api, nil, []sitefile.Row{{Name: "BR-Oslo"}})

	opts := importOpts()
	opts.Username = ""
	opts.Password = ""
	err := Import(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terminal in tests")
}
