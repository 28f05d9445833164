package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/xavierca1/handover-portal/internal/entity"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

// FindByEmailAndPhone is the single read the workflow needs: exact equality
// on both fields, zero or one row.
func (r *ClientRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Client, error) {
	query := `
		SELECT id, name, email, phone_number, project_name, project_category, due_paise, project_access_link
		FROM clients
		WHERE email = $1 AND phone_number = $2
	`

	var c entity.Client
	err := r.DB.QueryRowContext(ctx, query, email, phone).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.PhoneNumber,
		&c.ProjectName,
		&c.ProjectCategory,
		&c.DuePaise,
		&c.ProjectAccessLink,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrClientNotFound
		}
		log.Printf("❌ client lookup failed: %v", err)
		return nil, err
	}

	return &c, nil
}
