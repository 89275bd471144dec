package ui

import (
	"fmt"
	"testing"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
)

func testCertResources(n int) state.Resources {
	certs := make([]bastion.Certificate, 0, n)
	for i := 1; i <= n; i++ {
		status := "valid"
		if i%5 == 0 {
			status = "expiring"
		}
		certs = append(certs, bastion.Certificate{
			ID:           int64(i),
			CommonName:   fmt.Sprintf("host-%02d.example.com", i),
			SerialNumber: fmt.Sprintf("SN-%04d", i),
			Status:       status,
			Issuer:       "Bastion Intermediate CA",
			NotAfter:     fmt.Sprintf("2026-%02d-01 00:00:00", (i%12)+1),
		})
	}
	return state.Resources{Certificates: certs}
}

func TestCertificatesPaneFilterCycle(t *testing.T) {
	p, err := newCertificatesPane(10, nil)
	if err != nil {
		t.Fatalf("newCertificatesPane: %v", err)
	}
	p.setResources(testCertResources(20))

	if got := p.engine.TotalFiltered(); got != 20 {
		t.Fatalf("unfiltered count = %d, want 20", got)
	}
	if got := p.filterLabel(); got != "All" {
		t.Fatalf("initial filter = %q, want All", got)
	}

	p.cycleFilter() // Expiring
	if got := p.filterLabel(); got != "Expiring" {
		t.Fatalf("filter after one cycle = %q, want Expiring", got)
	}
	if got := p.engine.TotalFiltered(); got != 4 {
		t.Errorf("expiring count = %d, want 4", got)
	}

	// Cycling all the way around lands back on All with nothing filtered.
	for i := 0; i < len(p.filters)-1; i++ {
		p.cycleFilter()
	}
	if got := p.filterLabel(); got != "All" {
		t.Fatalf("filter after full cycle = %q, want All", got)
	}
	if got := p.engine.TotalFiltered(); got != 20 {
		t.Errorf("count after full cycle = %d, want 20", got)
	}
}

func TestPaneCursorSurvivesRefresh(t *testing.T) {
	p, err := newCertificatesPane(10, nil)
	if err != nil {
		t.Fatalf("newCertificatesPane: %v", err)
	}
	p.setResources(testCertResources(20))

	p.moveCursor(3)
	wantID := p.cursorID
	if wantID == "" {
		t.Fatal("cursor identity not recorded after move")
	}

	// A refresh with the same data keeps the cursor on the same record.
	p.setResources(testCertResources(20))
	if p.cursorID != wantID {
		t.Errorf("cursor identity after refresh = %q, want %q", p.cursorID, wantID)
	}

	// A refresh that drops the record clamps the cursor instead.
	res := testCertResources(2)
	p.setResources(res)
	view := p.engine.View()
	if p.cursor >= len(view.Rows) {
		t.Errorf("cursor %d out of range for %d rows", p.cursor, len(view.Rows))
	}
}

func TestPanePageSizeSteps(t *testing.T) {
	p, err := newCertificatesPane(20, nil)
	if err != nil {
		t.Fatalf("newCertificatesPane: %v", err)
	}
	p.setResources(testCertResources(120))

	p.growPageSize()
	if got := p.pageSize(); got != 50 {
		t.Errorf("page size after grow = %d, want 50", got)
	}
	p.growPageSize()
	if got := p.pageSize(); got != 100 {
		t.Errorf("page size after second grow = %d, want 100", got)
	}
	p.growPageSize() // already at the top step
	if got := p.pageSize(); got != 100 {
		t.Errorf("page size should cap at 100, got %d", got)
	}

	p.shrinkPageSize()
	if got := p.pageSize(); got != 50 {
		t.Errorf("page size after shrink = %d, want 50", got)
	}
}

func TestPaneSortCycle(t *testing.T) {
	p, err := newCertificatesPane(10, nil)
	if err != nil {
		t.Fatalf("newCertificatesPane: %v", err)
	}
	p.setResources(testCertResources(5))

	first := p.engine.Sort().Key
	if first != "expires" {
		t.Fatalf("initial sort key = %q, want expires", first)
	}

	seen := map[string]bool{first: true}
	for i := 0; i < len(p.sortKeys)-1; i++ {
		p.cycleSort()
		seen[p.engine.Sort().Key] = true
	}
	if len(seen) != len(p.sortKeys) {
		t.Errorf("sort cycle visited %d keys, want %d", len(seen), len(p.sortKeys))
	}

	p.toggleOrder()
	if got := p.sortLabel(); got == "" {
		t.Error("sortLabel should not be empty with an active sort")
	}
}

func TestRenderTablePopulatesHeaderAndRows(t *testing.T) {
	p, err := newCertificatesPane(10, nil)
	if err != nil {
		t.Fatalf("newCertificatesPane: %v", err)
	}
	p.setResources(testCertResources(3))
	p.setWidth(200)

	table := tview.NewTable()
	p.render(table, slateTheme(), true)

	if got := table.GetRowCount(); got != 4 {
		t.Fatalf("row count = %d, want 4 (header + 3 records)", got)
	}
	header := table.GetCell(0, 1).Text
	if header != " Common Name ▲ " && header != " Common Name " {
		t.Errorf("unexpected first header cell %q", header)
	}
}

func TestRenderCompactUsesTwoRowsPerRecord(t *testing.T) {
	p, err := newCertificatesPane(10, nil)
	if err != nil {
		t.Fatalf("newCertificatesPane: %v", err)
	}
	p.setResources(testCertResources(3))
	p.setWidth(60) // below the breakpoint

	table := tview.NewTable()
	p.render(table, slateTheme(), true)

	if got := table.GetRowCount(); got != 6 {
		t.Fatalf("row count = %d, want 6 (2 per record, no header)", got)
	}
}

func TestApprovalActionsOnlyWhenPending(t *testing.T) {
	p, err := newApprovalsPane(10, nil)
	if err != nil {
		t.Fatalf("newApprovalsPane: %v", err)
	}
	p.setResources(state.Resources{Approvals: []bastion.Approval{
		{ID: 1, Subject: "host-a", Kind: "revoke", Status: "pending"},
		{ID: 2, Subject: "host-b", Kind: "issue", Status: "approved"},
	}})

	p.cursorTop()
	view := p.engine.View()
	for i, id := range view.Identities {
		p.cursor = i
		p.cursorID = id
		actions := p.cursorActions()
		rec := view.Rows[i]
		if rec.Status == "pending" && len(actions) != 2 {
			t.Errorf("pending approval %d: got %d actions, want 2", rec.ID, len(actions))
		}
		if rec.Status != "pending" && len(actions) != 0 {
			t.Errorf("resolved approval %d: got %d actions, want 0", rec.ID, len(actions))
		}
	}
}
