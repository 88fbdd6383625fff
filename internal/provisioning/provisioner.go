package provisioning

import (
	"context"
	"fmt"
	"strings"

	"github.com/steelops/scmctl/internal/catalog"
	"github.com/steelops/scmctl/internal/platform/scm"
	"github.com/steelops/scmctl/internal/sitefile"
)

// Provisioner creates a site and its zone, uplink, and network objects
// from one input row at a time.
type Provisioner struct {
	api   scm.ControllerAPI
	orgID string
	wans  *catalog.WANCatalog
	obs   Observer
}

// NewProvisioner creates a provisioner for one organization. The WAN
// catalog must already be resolved and validated.
func NewProvisioner(api scm.ControllerAPI, orgID string, wans *catalog.WANCatalog, obs Observer) *Provisioner {
	return &Provisioner{api: api, orgID: orgID, wans: wans, obs: obs}
}

// ProvisionSite runs the full creation sequence for one row. The returned
// error is run-fatal (transport failure or a rejected read); everything
// else, including a rejected site creation, is captured in the Outcome so
// the caller can continue with the next row.
func (p *Provisioner) ProvisionSite(ctx context.Context, row sitefile.Row) (Outcome, error) {
	o := Outcome{SiteName: row.Name}
	p.printBanner(row)

	site, err := p.api.CreateSite(ctx, p.orgID, scm.SitePayload{
		Org:           p.orgID,
		Name:          row.Name,
		Longname:      row.Longname,
		Tags:          row.Tags,
		StreetAddress: row.StreetAddress,
		City:          row.City,
		Country:       row.Country,
		Timezone:      row.Timezone,
	})
	p.obs.Call("Adding site", err)
	if err != nil {
		if scm.IsRemoteRejection(err) {
			// Without a site id none of the follow-up calls can be
			// addressed; abort this row, not the run.
			o.Err = fmt.Errorf("site %q not created: %w", row.Name, err)
			return o, nil
		}
		return o, err
	}
	o.SiteID = site.ID

	// Site creation implicitly created the default zone and its network.
	zones, err := p.api.ListZones(ctx, site.ID)
	if err != nil {
		return o, fmt.Errorf("listing zones of %q: %w", row.Name, err)
	}
	if len(zones) == 0 {
		o.Err = fmt.Errorf("site %q has no default zone", row.Name)
		return o, nil
	}
	zone := zones[0]
	if len(zone.Networks) == 0 {
		o.Err = fmt.Errorf("zone %s of %q has no network", zone.ID, row.Name)
		return o, nil
	}

	internetUplinkID, err := p.findInternetUplink(ctx, site.ID)
	if err != nil {
		return o, fmt.Errorf("listing uplinks of %q: %w", row.Name, err)
	}

	// Named-WAN branch: a row naming the organization's custom WAN gets a
	// second uplink, and the network update attaches that WAN.
	var namedWANID string
	if p.wans.HasNamed() && row.WANName == p.wans.NamedName {
		namedWANID = p.wans.NamedID
		_, err := p.api.CreateUplink(ctx, p.orgID,
			scm.NewUplinkPayload(site.ID, p.wans.NamedID, strings.ToLower(row.WANIP), row.WANGW))
		if err := p.step(&o, "Adding uplink", err); err != nil {
			return o, err
		}
	}

	// Internet branch: dhcp rows leave the implicit uplink untouched.
	if !scm.IsDHCP(row.InternetIP) {
		if internetUplinkID == "" {
			missing := &scm.APIError{Status: 404, Message: "Internet uplink not found on site"}
			if err := p.step(&o, "Updating uplink", missing); err != nil {
				return o, err
			}
		} else {
			err := p.api.UpdateUplink(ctx, internetUplinkID,
				scm.NewUplinkPayload(site.ID, p.wans.InternetID, strings.ToLower(row.InternetIP), row.InternetGW))
			if err := p.step(&o, "Updating uplink", err); err != nil {
				return o, err
			}
		}
	}

	err = p.api.UpdateZone(ctx, zone.ID, scm.ZonePayload{
		Name: row.ZoneName,
		Site: zone.Site,
		Tag:  row.VLAN,
	})
	if err := p.step(&o, "Updating zone", err); err != nil {
		return o, err
	}

	wanIDs := []string{p.wans.RouteVPNID}
	if namedWANID != "" {
		wanIDs = []string{namedWANID, p.wans.RouteVPNID}
	}
	err = p.api.UpdateNetwork(ctx, zone.Networks[0], scm.NetworkPayload{
		Name:  "Net",
		Zone:  zone.ID,
		Site:  zone.Site,
		NetV4: row.ZoneIP,
		WANs:  wanIDs,
	})
	if err := p.step(&o, "Updating subnet", err); err != nil {
		return o, err
	}

	return o, nil
}

// step reports a mutation result and records it on the outcome. Remote
// rejections are kept per-row; anything else is run-fatal.
func (p *Provisioner) step(o *Outcome, name string, err error) error {
	p.obs.Call(name, err)
	if err != nil && !scm.IsRemoteRejection(err) {
		return err
	}
	o.Steps = append(o.Steps, StepResult{Step: name, Err: err})
	return nil
}

// findInternetUplink resolves the uplink the controller created for the
// Internet WAN when the site was added. The wan field may embed the id in
// a longer reference, hence the containment match.
func (p *Provisioner) findInternetUplink(ctx context.Context, siteID string) (string, error) {
	uplinks, err := p.api.ListUplinks(ctx, siteID)
	if err != nil {
		return "", err
	}
	for _, u := range uplinks {
		if strings.Contains(u.WAN, p.wans.InternetID) {
			return u.ID, nil
		}
	}
	return "", nil
}

func (p *Provisioner) printBanner(row sitefile.Row) {
	p.obs.Printf("%s\n", strings.Repeat("=", 79))
	p.obs.Printf("Site: %s, %s, %s (%s)", row.Name, row.Longname, row.City, row.Country)
	p.obs.Printf("Zone: %s (%s)", row.ZoneName, row.ZoneIP)
	p.obs.Printf("Internet uplink IP:\t %s - gw %s", row.InternetIP, orDHCP(row.InternetGW))
	if row.WANName != "" {
		p.obs.Printf("%s uplink IP:\t\t %s - gw %s", row.WANName, row.WANIP, orDHCP(row.WANGW))
	}
	p.obs.Printf("")
}

func orDHCP(gw string) string {
	if gw == "" {
		return "dhcp"
	}
	return gw
}
