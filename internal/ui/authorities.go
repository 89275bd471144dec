package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/tableview"
)

func newAuthoritiesPane(pageSize int, notify func(string)) (*resourcePane[bastion.Authority], error) {
	cfg := tableview.Config[bastion.Authority]{
		Columns: []tableview.Column[bastion.Authority]{
			{Key: "name", Title: "Name", Sortable: true, Sort: tableview.SortString, Priority: 1,
				Value: func(a bastion.Authority) string { return a.Name }},
			{Key: "status", Title: "Status", Sortable: true, Sort: tableview.SortString, Priority: 1, Renderer: renderStatus,
				Value: func(a bastion.Authority) string { return a.Status }},
			{Key: "kind", Title: "Kind", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(a bastion.Authority) string { return a.Kind }},
			{Key: "issued", Title: "Issued", Sortable: true, Sort: tableview.SortNumber, Priority: 2, Renderer: renderNumber,
				Value: func(a bastion.Authority) string { return strconv.Itoa(a.IssuedCount) }},
			{Key: "expires", Title: "Expires", Sortable: true, Sort: tableview.SortDate, Priority: 3, Renderer: renderDate,
				Value: func(a bastion.Authority) string { return a.NotAfter }},
			{Key: "subject", Title: "Subject DN", Priority: 4,
				Value: func(a bastion.Authority) string { return a.SubjectDN }},
			{Key: "crl", Title: "CRL Published", Priority: 4, Renderer: renderDate,
				Value: func(a bastion.Authority) string { return a.CRLLastPublished }},
		},
		SearchKeys: []string{"name", "subject"},
		Filters: map[string]tableview.Predicate[bastion.Authority]{
			"kind": fieldEquals(func(a bastion.Authority) string { return a.Kind }),
		},
		Identity:    func(a bastion.Authority) string { return idString(a.ID) },
		InitialSort: tableview.SortSpec{Key: "name", Direction: tableview.Ascending},
		PageSize:    pageSize,
		Selection:   tableview.SelectionNone,
		Callbacks:   paneCallbacks("authorities", notify),
	}

	p, err := newResourcePane("Authorities", cfg, func(res state.Resources) []bastion.Authority {
		return res.Authorities
	})
	if err != nil {
		return nil, err
	}
	p.filters = []filterOption{
		{Label: "All"},
		{Key: "kind", Value: "root", Label: "Roots"},
		{Key: "kind", Value: "intermediate", Label: "Intermediates"},
	}
	p.wideKeys = []string{"subject", "crl"}
	p.detail = authorityDetail
	return p, nil
}

func authorityDetail(a bastion.Authority, theme Theme) string {
	text := theme.Text
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-]  %s\n\n", text.Primary, tview.Escape(a.Name), statusTag(theme, a.Status))
	fmt.Fprintf(&b, "[%s]Kind:[-]       [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(titleCase(a.Kind)))
	fmt.Fprintf(&b, "[%s]Subject DN:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.SubjectDN)))
	fmt.Fprintf(&b, "[%s]Serial:[-]     [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.SerialNumber)))
	fmt.Fprintf(&b, "[%s]Not after:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.NotAfter)))
	fmt.Fprintf(&b, "[%s]Issued:[-]     [%s]%d certificates[-]\n", text.Muted, text.Primary, a.IssuedCount)
	fmt.Fprintf(&b, "[%s]CRL:[-]        [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.CRLLastPublished)))
	return b.String()
}
