package eatstreet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

func TestMerge(t *testing.T) {
	t.Parallel()
	t.Run("overwrites present fields and preserves the rest", func(t *testing.T) {
		t.Parallel()

		order := eatstreet.NewOrderFor("rest-key", 0.1)
		order.Comments = "ring the bell"
		order.FirstName = "Ada"

		payload := []byte(`{"apiKey":"order-key","subtotal":10.01,"tax":1.01,"total":11.02}`)

		keys, err := eatstreet.Merge(payload, order)
		require.NoError(t, err)

		assert.Equal(t, []string{"apiKey", "subtotal", "tax", "total"}, keys)
		assert.Equal(t, "order-key", order.APIKey)
		assert.Equal(t, 10.01, order.Subtotal)
		assert.Equal(t, 1.01, order.Tax)
		assert.Equal(t, 11.02, order.Total)

		assert.Equal(t, "ring the bell", order.Comments)
		assert.Equal(t, "Ada", order.FirstName)
		assert.Equal(t, "rest-key", order.RestaurantAPIKey)
	})

	t.Run("merging twice is stable", func(t *testing.T) {
		t.Parallel()

		user := &eatstreet.User{FirstName: "Ada"}
		payload := []byte(`{"email":"ada@example.com"}`)

		_, err := eatstreet.Merge(payload, user)
		require.NoError(t, err)

		_, err = eatstreet.Merge(payload, user)
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "Ada", user.FirstName)
	})

	t.Run("nil target", func(t *testing.T) {
		t.Parallel()

		_, err := eatstreet.Merge([]byte(`{}`), nil)
		assert.ErrorIs(t, err, eatstreet.ErrMergeTargetNil)

		var order *eatstreet.Order

		_, err = eatstreet.Merge([]byte(`{}`), order)
		assert.ErrorIs(t, err, eatstreet.ErrMergeTargetNil)
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()

		_, err := eatstreet.Merge([]byte(`{}`), eatstreet.Order{})
		assert.ErrorIs(t, err, eatstreet.ErrMergeTargetNil)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()

		order := eatstreet.NewOrderFor("rest-key", 0.1)

		_, err := eatstreet.Merge([]byte(`not json`), order)
		assert.Error(t, err)
	})
}
