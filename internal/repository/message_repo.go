package repository

import (
	"context"
	"fmt"

	"homefinder/internal/model"
)

// MessageRepository defines operations for inquiry messages
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByHome(ctx context.Context, homeID int) ([]model.MessageView, error)
}

type messageRepository struct {
	db DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new inquiry message
func (r *messageRepository) Create(ctx context.Context, m *model.Message) error {
	sql := `INSERT INTO messages (message, realtor_id, buyer_id, home_id)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, m.Text, m.RealtorID, m.BuyerID, m.HomeID).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// FindByHome retrieves all messages for a home, each with the sending
// buyer's contact fields.
func (r *messageRepository) FindByHome(ctx context.Context, homeID int) ([]model.MessageView, error) {
	sql := `SELECT m.message, u.name, u.email, u.phone
            FROM messages m JOIN users u ON m.buyer_id = u.id
            WHERE m.home_id = $1 ORDER BY m.id`
	rows, err := r.db.Query(ctx, sql, homeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages by home: %w", err)
	}
	defer rows.Close()

	var messages []model.MessageView
	for rows.Next() {
		var mv model.MessageView
		if err := rows.Scan(&mv.Text, &mv.Buyer.Name, &mv.Buyer.Email, &mv.Buyer.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, mv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}
