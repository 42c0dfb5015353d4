// Package repository contains the SQL access layer. Lookups that can
// miss return (nil, nil) so callers can treat stale references as
// no-ops without error-type plumbing.
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

func encodeIDs(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode id list: %w", err)
	}
	return string(raw), nil
}

func decodeIDs(raw string) ([]int64, error) {
	if raw == "" {
		return []int64{}, nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode id list: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// placeholders renders "?,?,?" for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func idArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
