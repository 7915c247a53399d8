package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AgentService manages supplier master data.
type AgentService interface {
	CreateAgent(ctx context.Context, input AgentInput) (*Agent, error)
	GetAgents(ctx context.Context) ([]Agent, error)
	GetAgent(ctx context.Context, id int) (*Agent, error)
	UpdateAgent(ctx context.Context, id int, input AgentInput) (*Agent, error)
	DeleteAgent(ctx context.Context, id int) error
}

type agentService struct {
	pool *pgxpool.Pool
}

// NewAgentService constructs an AgentService backed by PostgreSQL.
func NewAgentService(pool *pgxpool.Pool) AgentService {
	return &agentService{pool: pool}
}

func (s *agentService) CreateAgent(ctx context.Context, input AgentInput) (*Agent, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a := &Agent{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO agents (name, phone)
		VALUES ($1, $2)
		RETURNING id, name, phone, created_at`,
		input.Name, input.Phone,
	).Scan(&a.ID, &a.Name, &a.Phone, &a.CreatedAt)
	if err != nil {
		return nil, storeErr("create agent", err)
	}
	return a, nil
}

func (s *agentService) GetAgents(ctx context.Context) ([]Agent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, phone, created_at
		FROM agents
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, storeErr("list agents", err)
	}
	defer rows.Close()

	var agents []Agent
	for rows.Next() {
		var a Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list agents", err)
	}
	return agents, nil
}

func (s *agentService) GetAgent(ctx context.Context, id int) (*Agent, error) {
	a := &Agent{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, phone, created_at
		FROM agents WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Phone, &a.CreatedAt)
	if err != nil {
		return nil, wrapLookupErr("agent", id, err)
	}
	return a, nil
}

func (s *agentService) UpdateAgent(ctx context.Context, id int, input AgentInput) (*Agent, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a := &Agent{}
	err := s.pool.QueryRow(ctx, `
		UPDATE agents SET name = $1, phone = $2
		WHERE id = $3
		RETURNING id, name, phone, created_at`,
		input.Name, input.Phone, id,
	).Scan(&a.ID, &a.Name, &a.Phone, &a.CreatedAt)
	if err != nil {
		return nil, wrapLookupErr("agent", id, err)
	}
	return a, nil
}

func (s *agentService) DeleteAgent(ctx context.Context, id int) error {
	// Purchases recorded against this agent keep their agent_name snapshot.
	tag, err := s.pool.Exec(ctx, "DELETE FROM agents WHERE id = $1", id)
	if err != nil {
		return storeErr("delete agent", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "agent", ID: id}
	}
	return nil
}
