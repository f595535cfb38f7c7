package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func strPtr(s string) *string {
	return &s
}

func TestStore_UpsertLead_Idempotent(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Close()
	testDB.Truncate(t)

	ctx := context.Background()
	params := UpsertLeadParams{
		OwnerName: strPtr("Jane Doe"),
		Phone:     "+15551234567",
		Address:   strPtr("12 Main St"),
	}

	first, err := testDB.Store.UpsertLead(ctx, params)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := testDB.Store.UpsertLead(ctx, params)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected same row, got ids %d and %d", first.ID, second.ID)
	}
	if *second.OwnerName != "Jane Doe" || *second.Address != "12 Main St" {
		t.Errorf("row changed under identical upsert: %+v", second)
	}

	leads, err := testDB.Store.ListRecentLeads(ctx, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("expected exactly one row per phone, got %d", len(leads))
	}
}

func TestStore_UpsertLead_Coalesce(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Close()

	ctx := context.Background()

	tests := []struct {
		name          string
		second        UpsertLeadParams
		wantOwnerName string
		wantAddress   string
	}{
		{
			name:          "null fields never clear stored values",
			second:        UpsertLeadParams{Phone: "+15551234567"},
			wantOwnerName: "Jane Doe",
			wantAddress:   "12 Main St",
		},
		{
			name: "non-null fields always overwrite",
			second: UpsertLeadParams{
				OwnerName: strPtr("Janet Doe"),
				Phone:     "+15551234567",
				Address:   strPtr("14 Main St"),
			},
			wantOwnerName: "Janet Doe",
			wantAddress:   "14 Main St",
		},
		{
			name: "partial update merges",
			second: UpsertLeadParams{
				OwnerName: strPtr("Janet Doe"),
				Phone:     "+15551234567",
			},
			wantOwnerName: "Janet Doe",
			wantAddress:   "12 Main St",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			_, err := testDB.Store.UpsertLead(ctx, UpsertLeadParams{
				OwnerName: strPtr("Jane Doe"),
				Phone:     "+15551234567",
				Address:   strPtr("12 Main St"),
			})
			if err != nil {
				t.Fatalf("seed upsert failed: %v", err)
			}

			lead, err := testDB.Store.UpsertLead(ctx, tt.second)
			if err != nil {
				t.Fatalf("second upsert failed: %v", err)
			}

			if lead.OwnerName == nil || *lead.OwnerName != tt.wantOwnerName {
				t.Errorf("owner_name = %v, want %q", lead.OwnerName, tt.wantOwnerName)
			}
			if lead.Address == nil || *lead.Address != tt.wantAddress {
				t.Errorf("address = %v, want %q", lead.Address, tt.wantAddress)
			}
		})
	}
}

func TestStore_ListRecentLeads_Ordering(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Close()
	testDB.Truncate(t)

	ctx := context.Background()

	t1 := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	// three leads: called at t1, called at t2, never called
	for i, calledAt := range []*time.Time{&t1, &t2, nil} {
		phone := fmt.Sprintf("+1555000000%d", i)
		if _, err := testDB.Store.UpsertLead(ctx, UpsertLeadParams{Phone: phone}); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
		if calledAt != nil {
			if _, err := testDB.db.Exec("UPDATE leads SET last_call_at = $1 WHERE phone = $2", *calledAt, phone); err != nil {
				t.Fatalf("failed to set last_call_at: %v", err)
			}
		}
	}

	leads, err := testDB.Store.ListRecentLeads(ctx, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(leads))
	}

	if leads[0].Phone != "+15550000001" {
		t.Errorf("expected most recently called first, got %s", leads[0].Phone)
	}
	if leads[1].Phone != "+15550000000" {
		t.Errorf("expected older call second, got %s", leads[1].Phone)
	}
	if leads[2].LastCallAt != nil {
		t.Errorf("expected never-called lead last, got %+v", leads[2])
	}
}

func TestStore_ListRecentLeads_TiebreakAndLimit(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Close()
	testDB.Truncate(t)

	ctx := context.Background()

	for i := 0; i < 55; i++ {
		phone := fmt.Sprintf("+1555%07d", i)
		if _, err := testDB.Store.UpsertLead(ctx, UpsertLeadParams{Phone: phone}); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	leads, err := testDB.Store.ListRecentLeads(ctx, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leads) != 50 {
		t.Fatalf("expected the window capped at 50, got %d", len(leads))
	}

	// all last_call_at are NULL, so id DESC decides the order
	for i := 1; i < len(leads); i++ {
		if leads[i-1].ID <= leads[i].ID {
			t.Fatalf("expected descending ids, got %d before %d", leads[i-1].ID, leads[i].ID)
		}
	}
}
