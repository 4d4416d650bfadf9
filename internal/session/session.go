// Package session хранит текущую учетную запись под ключом
// "currentUser" - так же, как это делал исходный клиент.
package session

import (
	"context"
	"errors"
	"fmt"

	"jobdesk/internal/codec"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/storage"
	"jobdesk/internal/store"
)

// Session - контекст входа поверх хранилища ключ-значение.
type Session struct {
	backend storage.Backend
}

// New создает контекст входа.
func New(backend storage.Backend) *Session {
	return &Session{backend: backend}
}

// Save записывает учетную запись как текущую. Пароль в запись не
// попадает.
func (s *Session) Save(ctx context.Context, user *entities.User) error {
	sanitized := user.Sanitized()
	text, err := codec.EncodeOne(sanitized)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	if err := s.backend.Write(ctx, store.KeyCurrentUser, text); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Current возвращает текущую учетную запись или nil, если входа нет.
// Поврежденная запись равносильна отсутствию входа.
func (s *Session) Current(ctx context.Context) (*entities.User, error) {
	text, err := s.backend.Read(ctx, store.KeyCurrentUser)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	user, ok := codec.DecodeOne[entities.User](ctx, text)
	if !ok {
		return nil, nil
	}
	user.Normalize()
	return &user, nil
}

// Clear завершает сеанс.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.backend.Remove(ctx, store.KeyCurrentUser); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
