package scm

import "context"

// OrgLister defines the interface for enumerating organizations.
type OrgLister interface {
	ListOrgs(ctx context.Context) ([]Org, error)
}

// SiteManager defines the interface for managing sites.
type SiteManager interface {
	ListSites(ctx context.Context) ([]Site, error)
	CreateSite(ctx context.Context, orgID string, payload SitePayload) (*Site, error)
	DeleteSite(ctx context.Context, siteID string) error
}

// WANLister defines the interface for enumerating an organization's WANs.
type WANLister interface {
	ListWANs(ctx context.Context, orgID string) ([]WAN, error)
}

// ZoneManager defines the interface for managing zones.
type ZoneManager interface {
	ListZones(ctx context.Context, siteID string) ([]Zone, error)
	UpdateZone(ctx context.Context, zoneID string, payload ZonePayload) error
}

// UplinkManager defines the interface for managing uplinks.
type UplinkManager interface {
	ListUplinks(ctx context.Context, siteID string) ([]Uplink, error)
	CreateUplink(ctx context.Context, orgID string, payload UplinkPayload) (*Uplink, error)
	UpdateUplink(ctx context.Context, uplinkID string, payload UplinkPayload) error
}

// NetworkManager defines the interface for managing networks.
type NetworkManager interface {
	UpdateNetwork(ctx context.Context, networkID string, payload NetworkPayload) error
}

// ControllerAPI combines all controller interfaces.
type ControllerAPI interface {
	OrgLister
	SiteManager
	WANLister
	ZoneManager
	UplinkManager
	NetworkManager
}
