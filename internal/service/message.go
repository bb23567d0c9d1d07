package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/msomdec/social-media-api/internal/domain"
)

// AccountLookup resolves the acting account for a message mutation.
// *AccountService satisfies it.
type AccountLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, bool, error)
}

// MessageService enforces message content rules and authorship.
type MessageService struct {
	messages domain.MessageRepository
	accounts AccountLookup
	logger   *slog.Logger
}

// NewMessageService creates a new MessageService. A nil logger uses slog.Default().
func NewMessageService(messages domain.MessageRepository, accounts AccountLookup, logger *slog.Logger) *MessageService {
	return &MessageService{messages: messages, accounts: accounts, logger: loggerOrDefault(logger)}
}

// GetByID returns the message or an error wrapping domain.ErrNotFound.
func (s *MessageService) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	msg, found, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.WarnContext(ctx, "message not found", "message_id", id)
		return nil, fmt.Errorf("%w: message %d", domain.ErrNotFound, id)
	}
	return msg, nil
}

// Lookup returns the message if present; a missing message is not an error.
func (s *MessageService) Lookup(ctx context.Context, id int64) (*domain.Message, bool, error) {
	s.logger.DebugContext(ctx, "fetching message", "message_id", id)

	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, storageFailure(ctx, s.logger, "fetching message", err)
	}
	return msg, true, nil
}

func (s *MessageService) GetAll(ctx context.Context) ([]domain.Message, error) {
	msgs, err := s.messages.GetAll(ctx)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "fetching all messages", err)
	}
	return msgs, nil
}

// GetByAccountID lists the messages posted by an account. An unknown account
// yields an empty slice.
func (s *MessageService) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Message, error) {
	msgs, err := s.messages.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "fetching messages by account", err)
	}
	return msgs, nil
}

// Create persists draft on behalf of author. Checks run in order and the first
// failure wins: author must be non-nil, the text must be valid, and the author
// may only post as itself.
func (s *MessageService) Create(ctx context.Context, draft domain.Message, author *domain.Account) (*domain.Message, error) {
	s.logger.InfoContext(ctx, "creating message", "posted_by", draft.PostedBy)

	if author == nil {
		return nil, fmt.Errorf("%w: account must exist when posting a new message", domain.ErrForbidden)
	}
	if err := validateText(draft.Text); err != nil {
		s.logger.WarnContext(ctx, "message rejected", "posted_by", draft.PostedBy, "error", err)
		return nil, err
	}
	if author.ID != draft.PostedBy {
		return nil, fmt.Errorf("%w: account %d cannot post as account %d", domain.ErrForbidden, author.ID, draft.PostedBy)
	}

	msg := &domain.Message{
		PostedBy:      draft.PostedBy,
		Text:          draft.Text,
		PostedAtEpoch: draft.PostedAtEpoch,
	}
	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, storageFailure(ctx, s.logger, "creating message", err)
	}
	return msg, nil
}

// Post resolves the acting account from draft.PostedBy and creates the message.
func (s *MessageService) Post(ctx context.Context, draft domain.Message) (*domain.Message, error) {
	author, found, err := s.accounts.GetByID(ctx, draft.PostedBy)
	if err != nil {
		return nil, err
	}
	if !found {
		author = nil
	}
	return s.Create(ctx, draft, author)
}

// Update applies patch.Text to an existing message and returns the full record.
// PostedBy and PostedAtEpoch of the stored message are kept. No ownership
// check is made here; callers pass an already authorized patch.
func (s *MessageService) Update(ctx context.Context, patch domain.Message) (*domain.Message, error) {
	s.logger.InfoContext(ctx, "updating message", "message_id", patch.ID)

	existing, err := s.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	existing.Text = patch.Text
	if err := validateText(existing.Text); err != nil {
		s.logger.WarnContext(ctx, "message rejected", "message_id", patch.ID, "error", err)
		return nil, err
	}

	ok, err := s.messages.Update(ctx, existing)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "updating message", err)
	}
	if !ok {
		// Deleted between the read and the write.
		return nil, fmt.Errorf("%w: message %d", domain.ErrNotFound, patch.ID)
	}
	return existing, nil
}

// Delete removes the message by ID. It returns false when it was already gone.
func (s *MessageService) Delete(ctx context.Context, message domain.Message) (bool, error) {
	s.logger.InfoContext(ctx, "deleting message", "message_id", message.ID)

	ok, err := s.messages.Delete(ctx, &message)
	if err != nil {
		return false, storageFailure(ctx, s.logger, "deleting message", err)
	}
	return ok, nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: message text cannot be empty", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message text cannot exceed %d characters", domain.ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
