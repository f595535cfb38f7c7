package store

import (
	"context"
	"fmt"
	"time"
)

// Lead represents a contact record keyed by phone number
type Lead struct {
	ID         int64      `db:"id" json:"id"`
	OwnerName  *string    `db:"owner_name" json:"owner_name"`
	Phone      string     `db:"phone" json:"phone"`
	Address    *string    `db:"address" json:"address"`
	LastCallAt *time.Time `db:"last_call_at" json:"last_call_at,omitempty"`
}

// UpsertLeadParams represents parameters for upserting a lead
type UpsertLeadParams struct {
	OwnerName *string
	Phone     string
	Address   *string
}

const sqlUpsertLead = `
INSERT INTO leads (owner_name, phone, address)
VALUES ($1, $2, $3)
ON CONFLICT (phone) DO UPDATE SET
	owner_name = COALESCE(excluded.owner_name, leads.owner_name),
	address    = COALESCE(excluded.address, leads.address)
RETURNING id, owner_name, phone, address, last_call_at
`

// UpsertLead inserts a lead, or on a phone collision merges the incoming
// fields into the existing row. COALESCE keeps stored values when the
// incoming field is NULL; a non-NULL incoming field always wins. The
// conflict resolution is atomic in the database, so concurrent upserts on
// the same phone need no application-level coordination.
func (s *Store) UpsertLead(ctx context.Context, params UpsertLeadParams) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlUpsertLead,
		params.OwnerName,
		params.Phone,
		params.Address)
	if err != nil {
		return Lead{}, fmt.Errorf("failed to upsert lead: %w", err)
	}
	return lead, nil
}

const sqlListRecentLeads = `
SELECT id, owner_name, phone, address, last_call_at
FROM leads
ORDER BY last_call_at DESC NULLS LAST, id DESC
LIMIT $1
`

// ListRecentLeads returns leads ordered by most recent call first. Leads
// never called sort last, ties break on descending id.
func (s *Store) ListRecentLeads(ctx context.Context, limit int) ([]Lead, error) {
	leads := []Lead{}
	err := s.db.SelectContext(ctx, &leads, sqlListRecentLeads, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leads: %w", err)
	}
	return leads, nil
}
