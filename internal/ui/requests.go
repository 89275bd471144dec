package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/tableview"
)

func newRequestsPane(pageSize int, notify func(string)) (*resourcePane[bastion.SigningRequest], error) {
	cfg := tableview.Config[bastion.SigningRequest]{
		Columns: []tableview.Column[bastion.SigningRequest]{
			{Key: "cn", Title: "Common Name", Sortable: true, Sort: tableview.SortString, Priority: 1,
				Value: func(r bastion.SigningRequest) string { return r.CommonName }},
			{Key: "status", Title: "Status", Sortable: true, Sort: tableview.SortString, Priority: 1, Renderer: renderStatus,
				Value: func(r bastion.SigningRequest) string { return r.Status }},
			{Key: "requester", Title: "Requester", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(r bastion.SigningRequest) string { return r.Requester }},
			{Key: "submitted", Title: "Submitted", Sortable: true, Sort: tableview.SortDate, Priority: 2, Renderer: renderDate,
				Value: func(r bastion.SigningRequest) string { return r.SubmittedAt }},
			{Key: "template", Title: "Template", Sortable: true, Sort: tableview.SortString, Priority: 3,
				Value: func(r bastion.SigningRequest) string { return r.Template }},
			{Key: "keytype", Title: "Key", Priority: 3,
				Value: func(r bastion.SigningRequest) string { return r.KeyType }},
		},
		SearchKeys: []string{"cn", "requester"},
		Filters: map[string]tableview.Predicate[bastion.SigningRequest]{
			"status": fieldEquals(func(r bastion.SigningRequest) string { return r.Status }),
		},
		Identity:    func(r bastion.SigningRequest) string { return idString(r.ID) },
		InitialSort: tableview.SortSpec{Key: "submitted", Direction: tableview.Descending},
		PageSize:    pageSize,
		Selection:   tableview.SelectionMulti,
		Callbacks:   paneCallbacks("requests", notify),
	}

	p, err := newResourcePane("Requests", cfg, func(res state.Resources) []bastion.SigningRequest {
		return res.Requests
	})
	if err != nil {
		return nil, err
	}
	p.filters = []filterOption{
		{Label: "All"},
		{Key: "status", Value: "pending", Label: "Pending"},
		{Key: "status", Value: "approved", Label: "Approved"},
		{Key: "status", Value: "denied", Label: "Denied"},
		{Key: "status", Value: "issued", Label: "Issued"},
	}
	p.detail = requestDetail
	return p, nil
}

func requestDetail(r bastion.SigningRequest, theme Theme) string {
	text := theme.Text
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-]  %s\n\n", text.Primary, tview.Escape(r.CommonName), statusTag(theme, r.Status))
	fmt.Fprintf(&b, "[%s]Requester:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(r.Requester)))
	fmt.Fprintf(&b, "[%s]Template:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(r.Template)))
	fmt.Fprintf(&b, "[%s]Key type:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(r.KeyType)))
	fmt.Fprintf(&b, "[%s]Submitted:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(r.SubmittedAt)))
	return b.String()
}
