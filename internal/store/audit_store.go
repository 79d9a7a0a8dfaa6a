package store

import (
	"context"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// AppendAuditLog records a data-changing action. Audit entries are
// append-only and never updated.
func (s *SQLiteStore) AppendAuditLog(ctx context.Context, entry model.AuditLog) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_logs (user_id, action, table_name, record_id, old_values, new_values, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Action, entry.TableName, entry.RecordID,
		entry.OldValues, entry.NewValues, time.Now().UTC(),
	)
	if err != nil {
		return persistErr("appending audit log", err)
	}
	return nil
}

// GetAuditLogs retrieves the most recent audit entries, newest first.
func (s *SQLiteStore) GetAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	err := s.db.SelectContext(ctx, &entries,
		"SELECT * FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, persistErr("querying audit logs", err)
	}
	return entries, nil
}
