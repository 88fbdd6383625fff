// Package catalog resolves organizations, sites, and WAN definitions from
// the controller into the identifiers the provisioning workflows need.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/steelops/scmctl/internal/platform/scm"
)

// Reserved WAN names every organization carries.
const (
	WANInternet = "Internet"
	WANRouteVPN = "RouteVPN"
)

// Reader is the subset of the controller API the resolver needs.
type Reader interface {
	ListOrgs(ctx context.Context) ([]scm.Org, error)
	ListSites(ctx context.Context) ([]scm.Site, error)
	ListWANs(ctx context.Context, orgID string) ([]scm.WAN, error)
}

// NotFoundError indicates a lookup matched nothing.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// WANCatalog holds the classified WAN identifiers of an organization:
// the two reserved WANs plus at most one custom ("named") WAN.
type WANCatalog struct {
	InternetID string
	RouteVPNID string
	NamedID    string
	NamedName  string
}

// HasNamed reports whether the organization defines a custom WAN.
func (c *WANCatalog) HasNamed() bool {
	return c.NamedID != ""
}

// Resolver looks up catalog objects on the controller.
type Resolver struct {
	api Reader
}

// NewResolver creates a resolver backed by the given controller reader.
func NewResolver(api Reader) *Resolver {
	return &Resolver{api: api}
}

// FindOrg resolves an organization by exact short name, falling back to
// exact long name. No match is a hard failure, never a sentinel value.
func (r *Resolver) FindOrg(ctx context.Context, name string) (*scm.Org, error) {
	orgs, err := r.api.ListOrgs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	for i := range orgs {
		if orgs[i].Name == name {
			return &orgs[i], nil
		}
	}
	for i := range orgs {
		if orgs[i].Longname == name {
			return &orgs[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "organization", Name: name}
}

// FindSites returns the sites belonging to an organization.
func (r *Resolver) FindSites(ctx context.Context, orgID string) ([]scm.Site, error) {
	sites, err := r.api.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	var out []scm.Site
	for _, s := range sites {
		if s.Org == orgID {
			out = append(out, s)
		}
	}
	return out, nil
}

// FindWANs classifies the organization's WANs into the Internet and
// RouteVPN roles plus the optional custom slot. A missing reserved WAN or
// more than one custom WAN is a validation error rather than a silent
// overwrite surfacing later as an unresolved identifier.
func (r *Resolver) FindWANs(ctx context.Context, orgID string) (*WANCatalog, error) {
	wans, err := r.api.ListWANs(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing WANs: %w", err)
	}

	cat := &WANCatalog{}
	var custom []scm.WAN
	for _, w := range wans {
		switch w.Name {
		case WANInternet:
			cat.InternetID = w.ID
		case WANRouteVPN:
			cat.RouteVPNID = w.ID
		default:
			custom = append(custom, w)
		}
	}

	if cat.InternetID == "" {
		return nil, fmt.Errorf("organization has no %q WAN", WANInternet)
	}
	if cat.RouteVPNID == "" {
		return nil, fmt.Errorf("organization has no %q WAN", WANRouteVPN)
	}
	if len(custom) > 1 {
		names := make([]string, len(custom))
		for i, w := range custom {
			names[i] = w.Name
		}
		return nil, fmt.Errorf("expected at most one custom WAN, found %d: %s",
			len(custom), strings.Join(names, ", "))
	}
	if len(custom) == 1 {
		cat.NamedID = custom[0].ID
		cat.NamedName = custom[0].Name
	}
	return cat, nil
}
