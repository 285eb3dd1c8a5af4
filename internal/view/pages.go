package view

import "github.com/fraudlens/console/pkg/constants"

// Page is one navigable section of a console shell.
type Page struct {
	ID     constants.PageID `json:"id"`
	Title  string           `json:"title"`
	Active bool             `json:"active"`
}

// PageSet is the fixed navigation of one shell. Exactly one page is active
// at any time. Activating an unknown page falls back to the default page
// rather than leaving the set with no active entry.
type PageSet struct {
	pages     []Page
	defaultID constants.PageID
	activeID  constants.PageID
}

// NewAdminPages returns the admin shell navigation with the overview active.
func NewAdminPages() *PageSet {
	return newPageSet(constants.PageOverview, []Page{
		{ID: constants.PageOverview, Title: "Overview"},
		{ID: constants.PageUsers, Title: "Users"},
		{ID: constants.PageAnalytics, Title: "Analytics"},
		{ID: constants.PageAlerts, Title: "Risk Alerts"},
		{ID: constants.PageIntelligence, Title: "User Intelligence"},
	})
}

// NewAccountPages returns the end-user shell navigation with the dashboard
// active.
func NewAccountPages() *PageSet {
	return newPageSet(constants.PageDashboard, []Page{
		{ID: constants.PageDashboard, Title: "My Dashboard"},
		{ID: constants.PageNewTransaction, Title: "New Transaction"},
	})
}

func newPageSet(defaultID constants.PageID, pages []Page) *PageSet {
	s := &PageSet{pages: pages, defaultID: defaultID}
	s.Activate(defaultID)
	return s
}

// Activate marks the given page active and every other page inactive. An
// unknown ID activates the default page. It returns the page that ended up
// active.
func (s *PageSet) Activate(id constants.PageID) Page {
	if !s.contains(id) {
		id = s.defaultID
	}
	s.activeID = id
	var active Page
	for i := range s.pages {
		s.pages[i].Active = s.pages[i].ID == id
		if s.pages[i].Active {
			active = s.pages[i]
		}
	}
	return active
}

// Active returns the currently active page.
func (s *PageSet) Active() Page {
	for _, p := range s.pages {
		if p.Active {
			return p
		}
	}
	// Unreachable while the invariant holds; keep the fallback anyway.
	return s.Activate(s.defaultID)
}

// Pages returns the navigation entries in display order.
func (s *PageSet) Pages() []Page {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out
}

func (s *PageSet) contains(id constants.PageID) bool {
	for _, p := range s.pages {
		if p.ID == id {
			return true
		}
	}
	return false
}
