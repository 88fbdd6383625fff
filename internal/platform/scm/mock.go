package scm

import "context"

// MockClient is a func-field implementation of ControllerAPI for tests.
// Unset funcs return zero values.
type MockClient struct {
	ListOrgsFunc      func(ctx context.Context) ([]Org, error)
	ListSitesFunc     func(ctx context.Context) ([]Site, error)
	ListWANsFunc      func(ctx context.Context, orgID string) ([]WAN, error)
	ListZonesFunc     func(ctx context.Context, siteID string) ([]Zone, error)
	ListUplinksFunc   func(ctx context.Context, siteID string) ([]Uplink, error)
	CreateSiteFunc    func(ctx context.Context, orgID string, payload SitePayload) (*Site, error)
	CreateUplinkFunc  func(ctx context.Context, orgID string, payload UplinkPayload) (*Uplink, error)
	UpdateUplinkFunc  func(ctx context.Context, uplinkID string, payload UplinkPayload) error
	UpdateZoneFunc    func(ctx context.Context, zoneID string, payload ZonePayload) error
	UpdateNetworkFunc func(ctx context.Context, networkID string, payload NetworkPayload) error
	DeleteSiteFunc    func(ctx context.Context, siteID string) error
}

var _ ControllerAPI = (*MockClient)(nil)

func (m *MockClient) ListOrgs(ctx context.Context) ([]Org, error) {
	if m.ListOrgsFunc == nil {
		return nil, nil
	}
	return m.ListOrgsFunc(ctx)
}

func (m *MockClient) ListSites(ctx context.Context) ([]Site, error) {
	if m.ListSitesFunc == nil {
		return nil, nil
	}
	return m.ListSitesFunc(ctx)
}

func (m *MockClient) ListWANs(ctx context.Context, orgID string) ([]WAN, error) {
	if m.ListWANsFunc == nil {
		return nil, nil
	}
	return m.ListWANsFunc(ctx, orgID)
}

func (m *MockClient) ListZones(ctx context.Context, siteID string) ([]Zone, error) {
	if m.ListZonesFunc == nil {
		return nil, nil
	}
	return m.ListZonesFunc(ctx, siteID)
}

func (m *MockClient) ListUplinks(ctx context.Context, siteID string) ([]Uplink, error) {
	if m.ListUplinksFunc == nil {
		return nil, nil
	}
	return m.ListUplinksFunc(ctx, siteID)
}

func (m *MockClient) CreateSite(ctx context.Context, orgID string, payload SitePayload) (*Site, error) {
	if m.CreateSiteFunc == nil {
		return &Site{}, nil
	}
	return m.CreateSiteFunc(ctx, orgID, payload)
}

func (m *MockClient) CreateUplink(ctx context.Context, orgID string, payload UplinkPayload) (*Uplink, error) {
	if m.CreateUplinkFunc == nil {
		return &Uplink{}, nil
	}
	return m.CreateUplinkFunc(ctx, orgID, payload)
}

func (m *MockClient) UpdateUplink(ctx context.Context, uplinkID string, payload UplinkPayload) error {
	if m.UpdateUplinkFunc == nil {
		return nil
	}
	return m.UpdateUplinkFunc(ctx, uplinkID, payload)
}

func (m *MockClient) UpdateZone(ctx context.Context, zoneID string, payload ZonePayload) error {
	if m.UpdateZoneFunc == nil {
		return nil
	}
	return m.UpdateZoneFunc(ctx, zoneID, payload)
}

func (m *MockClient) UpdateNetwork(ctx context.Context, networkID string, payload NetworkPayload) error {
	if m.UpdateNetworkFunc == nil {
		return nil
	}
	return m.UpdateNetworkFunc(ctx, networkID, payload)
}

func (m *MockClient) DeleteSite(ctx context.Context, siteID string) error {
	if m.DeleteSiteFunc == nil {
		return nil
	}
	return m.DeleteSiteFunc(ctx, siteID)
}
