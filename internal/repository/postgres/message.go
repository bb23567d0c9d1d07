package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/social-media-api/internal/domain"
)

// MessageRepository implements domain.MessageRepository using Postgres.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	m := &domain.Message{}
	err := r.db.QueryRowContext(ctx,
		`SELECT message_id, posted_by, message_text, time_posted_epoch
		 FROM message WHERE message_id = $1`, id,
	).Scan(&m.ID, &m.PostedBy, &m.Text, &m.PostedAtEpoch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query message by id: %w", err)
	}
	return m, nil
}

func (r *MessageRepository) GetAll(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT message_id, posted_by, message_text, time_posted_epoch
		 FROM message ORDER BY message_id`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *MessageRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT message_id, posted_by, message_text, time_posted_epoch
		 FROM message WHERE posted_by = $1 ORDER BY message_id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list messages by account: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *MessageRepository) Insert(ctx context.Context, message *domain.Message) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO message (posted_by, message_text, time_posted_epoch)
		 VALUES ($1, $2, $3) RETURNING message_id`,
		message.PostedBy, message.Text, message.PostedAtEpoch,
	).Scan(&message.ID)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) Update(ctx context.Context, message *domain.Message) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE message SET posted_by = $1, message_text = $2, time_posted_epoch = $3
		 WHERE message_id = $4`,
		message.PostedBy, message.Text, message.PostedAtEpoch, message.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update message: %w", err)
	}
	return affected(result)
}

func (r *MessageRepository) Delete(ctx context.Context, message *domain.Message) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM message WHERE message_id = $1`, message.ID)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	return affected(result)
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.Text, &m.PostedAtEpoch); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
