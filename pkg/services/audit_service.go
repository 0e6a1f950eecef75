package services

import (
	"context"
	"fmt"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/adminaction"
)

// AuditService appends and reads the admin/auth audit trail. Rows written
// inside admin transactions use recordActionTx instead.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	if client == nil {
		panic("NewAuditService: client must not be nil")
	}
	return &AuditService{client: client}
}

// RecordActionInput describes one audit row. Actor is nil for failed-auth
// rows where no identity resolved.
type RecordActionInput struct {
	Actor      *ent.User
	ActorEmail string
	Action     string
	Target     string
	Detail     map[string]interface{}
}

// Record appends an audit row.
func (s *AuditService) Record(httpCtx context.Context, input RecordActionInput) error {
	if input.Action == "" {
		return NewValidationError("action", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	builder := s.client.AdminAction.Create().
		SetAction(input.Action)
	if input.Actor != nil {
		builder.SetActorID(input.Actor.ID)
		builder.SetActorEmail(input.Actor.Email)
	} else if input.ActorEmail != "" {
		builder.SetActorEmail(input.ActorEmail)
	}
	if input.Target != "" {
		builder.SetTarget(input.Target)
	}
	if input.Detail != nil {
		builder.SetDetail(input.Detail)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record audit row: %w", err)
	}
	return nil
}

// List returns the newest audit rows, capped at limit.
func (s *AuditService) List(httpCtx context.Context, limit int) ([]*ent.AdminAction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	rows, err := s.client.AdminAction.Query().
		Order(ent.Desc(adminaction.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit rows: %w", err)
	}
	return rows, nil
}
