package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/tableview"
)

func newTrustAnchorsPane(pageSize int, notify func(string)) (*resourcePane[bastion.TrustAnchor], error) {
	cfg := tableview.Config[bastion.TrustAnchor]{
		Columns: []tableview.Column[bastion.TrustAnchor]{
			{Key: "subject", Title: "Subject DN", Sortable: true, Sort: tableview.SortString, Priority: 1,
				Value: func(a bastion.TrustAnchor) string { return a.SubjectDN }},
			{Key: "source", Title: "Source", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(a bastion.TrustAnchor) string { return a.Source }},
			{Key: "expires", Title: "Expires", Sortable: true, Sort: tableview.SortDate, Priority: 2, Renderer: renderDate,
				Value: func(a bastion.TrustAnchor) string { return a.NotAfter }},
			{Key: "added", Title: "Added", Sortable: true, Sort: tableview.SortDate, Priority: 3, Renderer: renderDate,
				Value: func(a bastion.TrustAnchor) string { return a.AddedAt }},
			{Key: "fingerprint", Title: "Fingerprint", Priority: 4,
				Value: func(a bastion.TrustAnchor) string { return a.Fingerprint }},
		},
		SearchKeys: []string{"subject", "fingerprint"},
		Filters: map[string]tableview.Predicate[bastion.TrustAnchor]{
			"source": fieldEquals(func(a bastion.TrustAnchor) string { return a.Source }),
		},
		Identity:    func(a bastion.TrustAnchor) string { return idString(a.ID) },
		InitialSort: tableview.SortSpec{Key: "subject", Direction: tableview.Ascending},
		PageSize:    pageSize,
		Selection:   tableview.SelectionMulti,
		Callbacks:   paneCallbacks("trust anchors", notify),
	}

	p, err := newResourcePane("Trust Store", cfg, func(res state.Resources) []bastion.TrustAnchor {
		return res.TrustAnchors
	})
	if err != nil {
		return nil, err
	}
	p.filters = []filterOption{
		{Label: "All"},
		{Key: "source", Value: "system", Label: "System"},
		{Key: "source", Value: "imported", Label: "Imported"},
	}
	p.wideKeys = []string{"fingerprint"}
	p.detail = trustAnchorDetail
	return p, nil
}

func trustAnchorDetail(a bastion.TrustAnchor, theme Theme) string {
	text := theme.Text
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-]\n\n", text.Primary, tview.Escape(a.SubjectDN))
	fmt.Fprintf(&b, "[%s]Source:[-]      [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(titleCase(a.Source)))
	fmt.Fprintf(&b, "[%s]Fingerprint:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.Fingerprint)))
	fmt.Fprintf(&b, "[%s]Not after:[-]   [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.NotAfter)))
	fmt.Fprintf(&b, "[%s]Added:[-]       [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.AddedAt)))
	return b.String()
}
