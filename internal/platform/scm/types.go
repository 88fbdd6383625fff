package scm

import "strings"

// Org is an organization on the controller.
type Org struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Longname string `json:"longname"`
}

// Site is a physical or logical location within an organization.
type Site struct {
	ID            string `json:"id"`
	Org           string `json:"org"`
	Name          string `json:"name"`
	Longname      string `json:"longname"`
	Tags          string `json:"tags"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Timezone      string `json:"timezone"`
}

// WAN is a named transport definition referenced by uplinks and networks.
type WAN struct {
	ID       string `json:"id"`
	Org      string `json:"org"`
	Name     string `json:"name"`
	Longname string `json:"longname"`
}

// Zone is a logical network segment within a site. Site creation implicitly
// creates a default zone carrying one network.
type Zone struct {
	ID       string   `json:"id"`
	Site     string   `json:"site"`
	Name     string   `json:"name"`
	Tag      string   `json:"tag"`
	Networks []string `json:"networks"`
}

// Uplink is a WAN-facing interface configuration attached to a site.
type Uplink struct {
	ID         string  `json:"id"`
	Site       string  `json:"site"`
	WAN        string  `json:"wan"`
	Type       string  `json:"type"`
	StaticIPv4 *string `json:"static_ip_v4"`
	StaticGWv4 *string `json:"static_gw_v4"`
}

// Uplink types understood by the controller.
const (
	UplinkTypeStatic = "static"
	UplinkTypeDHCP   = "dhcpd"
)

// SitePayload is the request body for site creation.
type SitePayload struct {
	Org           string `json:"org"`
	Name          string `json:"name"`
	Longname      string `json:"longname"`
	Tags          string `json:"tags"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Timezone      string `json:"timezone"`
}

// UplinkPayload is the request body for uplink creation and updates.
// BGPLearnedRoutes must be the literal "[]" for the call to be accepted.
type UplinkPayload struct {
	Site             string  `json:"site"`
	WAN              string  `json:"wan"`
	Type             string  `json:"type"`
	StaticIPv4       *string `json:"static_ip_v4"`
	StaticGWv4       *string `json:"static_gw_v4"`
	BGPLearnedRoutes string  `json:"bgp_learned_routes_ver2"`
}

// NewUplinkPayload builds an uplink payload for the given site and WAN.
// The literal "dhcp" (any case) selects a dhcpd uplink with null static
// fields; any other address selects a static uplink.
func NewUplinkPayload(siteID, wanID, ip, gw string) UplinkPayload {
	p := UplinkPayload{
		Site:             siteID,
		WAN:              wanID,
		BGPLearnedRoutes: "[]",
	}
	if IsDHCP(ip) {
		p.Type = UplinkTypeDHCP
		return p
	}
	p.Type = UplinkTypeStatic
	p.StaticIPv4 = &ip
	p.StaticGWv4 = &gw
	return p
}

// IsDHCP reports whether an address field holds the literal "dhcp".
func IsDHCP(ip string) bool {
	return strings.EqualFold(strings.TrimSpace(ip), "dhcp")
}

// ZonePayload is the request body for zone updates.
type ZonePayload struct {
	Name string `json:"name"`
	Site string `json:"site"`
	Tag  string `json:"tag"`
}

// NetworkPayload is the request body for network updates. The controller
// rejects the call unless Name is set; "Net" is the conventional value.
type NetworkPayload struct {
	Name  string   `json:"name"`
	Zone  string   `json:"zone"`
	Site  string   `json:"site"`
	NetV4 string   `json:"netv4"`
	WANs  []string `json:"wans"`
}
