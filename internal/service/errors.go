package service

import (
	"context"
	"errors"
	"fmt"
)

// Operation failure kinds. Handlers map them to HTTP statuses with
// errors.Is, deeper causes stay wrapped underneath.
var (
	ErrUnauthenticated    = errors.New("требуется аутентификация")
	ErrInvalidInput       = errors.New("неверные входные данные")
	ErrItemNotFound       = errors.New("товар не найден")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrItemSold           = errors.New("товар уже продан")
	ErrEmailTaken         = errors.New("пользователь с таким email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrPartialFailure     = errors.New("операция выполнена частично")
	ErrStorageTimeout     = errors.New("хранилище не ответило вовремя")
)

// wrapStore attaches context to a storage error and turns a blown
// deadline into ErrStorageTimeout so the caller can decide to retry.
func wrapStore(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, ErrStorageTimeout)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
