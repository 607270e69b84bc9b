package entities

import "strings"

// Site is one country tenant. Each site keeps its quotes and proposals in its
// own spreadsheet, addressed by SheetID.
//
// Sites are static configuration: the registry is built once at process start
// and never mutated.

type Site struct {
	ID             string
	Name           string
	SheetID        string
	SiteURL        string
	ContactEmail   string
	Currency       string
	ClientIDPrefix string
}

// SiteRegistry is the immutable lookup table over configured sites.
type SiteRegistry struct {
	sites []Site
	byID  map[string]Site
}

func NewSiteRegistry(sites []Site) *SiteRegistry {
	byID := make(map[string]Site, len(sites))
	for _, s := range sites {
		byID[s.ID] = s
	}
	return &SiteRegistry{sites: sites, byID: byID}
}

func (r *SiteRegistry) Get(siteID string) (Site, bool) {
	s, ok := r.byID[siteID]
	return s, ok
}

// GetByPrefix resolves a site from its client-ID prefix. The set is small and
// fixed, so a linear scan is fine.
func (r *SiteRegistry) GetByPrefix(prefix string) (Site, bool) {
	for _, s := range r.sites {
		if s.ClientIDPrefix == prefix {
			return s, true
		}
	}
	return Site{}, false
}

// SiteForClientID routes a bare client ID (e.g. "SM-2025-014") back to its
// owning site via the prefix segment.
func (r *SiteRegistry) SiteForClientID(clientID string) (Site, bool) {
	prefix, _, ok := strings.Cut(clientID, "-")
	if !ok || prefix == "" {
		return Site{}, false
	}
	return r.GetByPrefix(prefix)
}

// All returns the configured sites in registration order.
func (r *SiteRegistry) All() []Site {
	out := make([]Site, len(r.sites))
	copy(out, r.sites)
	return out
}
