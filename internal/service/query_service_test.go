package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgpkrishna123/OLX/internal/models"
)

func TestQueryService_FindByStatus(t *testing.T) {
	ctx := context.Background()

	repo := newFakeItemRepo()
	repo.items["a"] = &models.Item{ItemID: "a", Name: "Стол", Status: models.ItemStatusUnsold}
	repo.items["b"] = &models.Item{ItemID: "b", Name: "Стул", Status: models.ItemStatusSold}

	svc := NewQueryService(repo, testConfig())

	t.Run("Точное совпадение статуса", func(t *testing.T) {
		items, err := svc.FindByStatus(ctx, models.ItemStatusSold)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "b", items[0].ItemID)
	})

	t.Run("Неизвестный статус отклоняется", func(t *testing.T) {
		for _, status := range []string{"", "SOLD", "published", "Unsold"} {
			items, err := svc.FindByStatus(ctx, status)

			assert.Nil(t, items, "статус %q должен быть отклонен", status)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("Ошибка хранилища", func(t *testing.T) {
		broken := newFakeItemRepo()
		broken.findErr = errors.New("database error")
		svc := NewQueryService(broken, testConfig())

		items, err := svc.FindByStatus(ctx, models.ItemStatusUnsold)

		assert.Nil(t, items)
		assert.Error(t, err)
	})
}

func TestQueryService_FindByLocation(t *testing.T) {
	ctx := context.Background()

	repo := newFakeItemRepo()
	repo.items["a"] = &models.Item{ItemID: "a", Name: "Диван", Location: "Санкт-Петербург"}
	repo.items["b"] = &models.Item{ItemID: "b", Name: "Кресло", Location: "Москва"}

	svc := NewQueryService(repo, testConfig())

	t.Run("Подстрока без учета регистра", func(t *testing.T) {
		items, err := svc.FindByLocation(ctx, "ПЕТЕРБУРГ")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ItemID)
	})

	t.Run("Пустой фильтр отклоняется", func(t *testing.T) {
		items, err := svc.FindByLocation(ctx, "   ")

		assert.Nil(t, items)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Нет совпадений возвращает пустой список", func(t *testing.T) {
		items, err := svc.FindByLocation(ctx, "Владивосток")

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestQueryService_FindByName(t *testing.T) {
	ctx := context.Background()

	repo := newFakeItemRepo()
	repo.items["a"] = &models.Item{ItemID: "a", Name: "Велосипед горный"}
	repo.items["b"] = &models.Item{ItemID: "b", Name: "Самокат"}

	svc := NewQueryService(repo, testConfig())

	t.Run("Подстрока без учета регистра", func(t *testing.T) {
		items, err := svc.FindByName(ctx, "велосипед")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ItemID)
	})

	t.Run("Пустой фильтр отклоняется", func(t *testing.T) {
		items, err := svc.FindByName(ctx, "")

		assert.Nil(t, items)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Таймаут хранилища", func(t *testing.T) {
		broken := newFakeItemRepo()
		broken.findErr = context.DeadlineExceeded
		svc := NewQueryService(broken, testConfig())

		items, err := svc.FindByName(ctx, "велосипед")

		assert.Nil(t, items)
		assert.ErrorIs(t, err, ErrStorageTimeout)
	})
}
