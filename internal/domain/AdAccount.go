package domain

import "time"

// AdAccount representa uma conta de anúncios conhecida pelo espelho relacional
type AdAccount struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Status       EntityStatus `json:"status"`
	LastSyncedAt *time.Time   `json:"last_synced_at,omitempty"`
}
