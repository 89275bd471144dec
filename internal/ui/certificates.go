package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/tableview"
)

func newCertificatesPane(pageSize int, notify func(string)) (*resourcePane[bastion.Certificate], error) {
	cfg := tableview.Config[bastion.Certificate]{
		Columns: []tableview.Column[bastion.Certificate]{
			{Key: "cn", Title: "Common Name", Sortable: true, Sort: tableview.SortString, Priority: 1,
				Value: func(c bastion.Certificate) string { return c.CommonName }},
			{Key: "status", Title: "Status", Sortable: true, Sort: tableview.SortString, Priority: 1, Renderer: renderStatus,
				Value: func(c bastion.Certificate) string { return c.Status }},
			{Key: "expires", Title: "Expires", Sortable: true, Sort: tableview.SortDate, Priority: 2, Renderer: renderDate,
				Value: func(c bastion.Certificate) string { return c.NotAfter }},
			{Key: "issuer", Title: "Issuer", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(c bastion.Certificate) string { return c.Issuer }},
			{Key: "template", Title: "Template", Sortable: true, Sort: tableview.SortString, Priority: 3,
				Value: func(c bastion.Certificate) string { return c.Template }},
			{Key: "keytype", Title: "Key", Priority: 3,
				Value: func(c bastion.Certificate) string { return c.KeyType }},
			{Key: "serial", Title: "Serial", Priority: 4,
				Value: func(c bastion.Certificate) string { return c.SerialNumber }},
			{Key: "sans", Title: "SANs", Priority: 4,
				Value: func(c bastion.Certificate) string { return strings.Join(c.SANs, ",") }},
		},
		SearchKeys: []string{"cn", "serial", "issuer", "sans"},
		Filters: map[string]tableview.Predicate[bastion.Certificate]{
			"status": fieldEquals(func(c bastion.Certificate) string { return c.Status }),
		},
		Identity:    func(c bastion.Certificate) string { return idString(c.ID) },
		InitialSort: tableview.SortSpec{Key: "expires", Direction: tableview.Ascending},
		PageSize:    pageSize,
		Selection:   tableview.SelectionMulti,
		Callbacks:   paneCallbacks("certificates", notify),
	}

	p, err := newResourcePane("Certificates", cfg, func(res state.Resources) []bastion.Certificate {
		return res.Certificates
	})
	if err != nil {
		return nil, err
	}
	p.filters = []filterOption{
		{Label: "All"},
		{Key: "status", Value: "expiring", Label: "Expiring"},
		{Key: "status", Value: "expired", Label: "Expired"},
		{Key: "status", Value: "revoked", Label: "Revoked"},
		{Key: "status", Value: "valid", Label: "Valid"},
	}
	p.wideKeys = []string{"serial", "sans"}
	p.detail = certificateDetail
	p.actions = func(c bastion.Certificate) []rowAction {
		if strings.EqualFold(c.Status, "revoked") {
			return nil
		}
		return []rowAction{{
			Label:   "Revoke",
			Confirm: fmt.Sprintf("Revoke certificate %s (serial %s)?", c.CommonName, c.SerialNumber),
			Run: func(ctx context.Context, client *bastion.Client) error {
				return client.RevokeCertificate(ctx, c.ID, "revoked via console")
			},
		}}
	}
	return p, nil
}

func certificateDetail(c bastion.Certificate, theme Theme) string {
	text := theme.Text
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-]  %s\n\n", text.Primary, tview.Escape(c.CommonName), statusTag(theme, c.Status))
	fmt.Fprintf(&b, "[%s]Serial:[-]    [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(c.SerialNumber)))
	fmt.Fprintf(&b, "[%s]Issuer:[-]    [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(c.Issuer)))
	fmt.Fprintf(&b, "[%s]Template:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(c.Template)))
	fmt.Fprintf(&b, "[%s]Key type:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(c.KeyType)))
	fmt.Fprintf(&b, "[%s]Not before:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(c.NotBefore)))
	fmt.Fprintf(&b, "[%s]Not after:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(c.NotAfter)))
	if c.RevokedAt != "" {
		fmt.Fprintf(&b, "[%s]Revoked at:[-] [%s]%s[-]\n", text.Muted, text.Danger, tview.Escape(c.RevokedAt))
	}
	if len(c.SANs) > 0 {
		fmt.Fprintf(&b, "\n[%s]Subject alternative names:[-]\n", text.Muted)
		for _, san := range c.SANs {
			fmt.Fprintf(&b, "  [%s]%s[-]\n", text.Primary, tview.Escape(san))
		}
	}
	fmt.Fprintf(&b, "\n[%s]Created %s · updated %s[-]\n", text.Faint, tview.Escape(orDash(c.CreatedAt)), tview.Escape(orDash(c.UpdatedAt)))
	return b.String()
}

// paneCallbacks surfaces engine warnings and filter failures in the footer.
func paneCallbacks(name string, notify func(string)) tableview.Callbacks {
	if notify == nil {
		return tableview.Callbacks{}
	}
	return tableview.Callbacks{
		OnFilterError: func(key string, err error) {
			notify(fmt.Sprintf("%s filter %q failed: %v", name, key, err))
		},
		Warn: func(msg string) {
			notify(fmt.Sprintf("%s: %s", name, msg))
		},
	}
}
