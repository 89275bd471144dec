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

func newTemplatesPane(pageSize int, notify func(string)) (*resourcePane[bastion.Template], error) {
	cfg := tableview.Config[bastion.Template]{
		Columns: []tableview.Column[bastion.Template]{
			{Key: "name", Title: "Name", Sortable: true, Sort: tableview.SortString, Priority: 1,
				Value: func(t bastion.Template) string { return t.Name }},
			{Key: "usage", Title: "Usage", Sortable: true, Sort: tableview.SortString, Priority: 1,
				Value: func(t bastion.Template) string { return t.Usage }},
			{Key: "authority", Title: "Authority", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(t bastion.Template) string { return t.Authority }},
			{Key: "validity", Title: "Validity (days)", Sortable: true, Sort: tableview.SortNumber, Priority: 2, Renderer: renderNumber,
				Value: func(t bastion.Template) string { return strconv.Itoa(t.ValidityDays) }},
			{Key: "keytype", Title: "Key", Priority: 3,
				Value: func(t bastion.Template) string { return t.KeyType }},
			{Key: "updated", Title: "Updated", Sortable: true, Sort: tableview.SortDate, Priority: 3, Renderer: renderDate,
				Value: func(t bastion.Template) string { return t.UpdatedAt }},
		},
		SearchKeys: []string{"name", "authority"},
		Filters: map[string]tableview.Predicate[bastion.Template]{
			"usage": fieldEquals(func(t bastion.Template) string { return t.Usage }),
		},
		Identity:    func(t bastion.Template) string { return idString(t.ID) },
		InitialSort: tableview.SortSpec{Key: "name", Direction: tableview.Ascending},
		PageSize:    pageSize,
		Selection:   tableview.SelectionSingle,
		Callbacks:   paneCallbacks("templates", notify),
	}

	p, err := newResourcePane("Templates", cfg, func(res state.Resources) []bastion.Template {
		return res.Templates
	})
	if err != nil {
		return nil, err
	}
	p.filters = []filterOption{
		{Label: "All"},
		{Key: "usage", Value: "server", Label: "Server"},
		{Key: "usage", Value: "client", Label: "Client"},
		{Key: "usage", Value: "code-signing", Label: "Code Signing"},
	}
	p.detail = templateDetail
	return p, nil
}

func templateDetail(t bastion.Template, theme Theme) string {
	text := theme.Text
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-]\n\n", text.Primary, tview.Escape(t.Name))
	fmt.Fprintf(&b, "[%s]Usage:[-]     [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(titleCase(t.Usage)))
	fmt.Fprintf(&b, "[%s]Authority:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(t.Authority)))
	fmt.Fprintf(&b, "[%s]Key type:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(t.KeyType)))
	fmt.Fprintf(&b, "[%s]Validity:[-]  [%s]%d days[-]\n", text.Muted, text.Primary, t.ValidityDays)
	fmt.Fprintf(&b, "[%s]Updated:[-]   [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(t.UpdatedAt)))
	return b.String()
}
