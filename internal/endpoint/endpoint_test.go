package endpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatstreet-community/eatstreet-go/internal/endpoint"
)

func TestDescriptor_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor endpoint.Descriptor
		args       []string
		expected   string
		wantErr    bool
	}{
		{
			name:       "static template",
			descriptor: endpoint.RestaurantSearch,
			args:       nil,
			expected:   "restaurant/search",
		},
		{
			name:       "single placeholder",
			descriptor: endpoint.RestaurantMenu,
			args:       []string{"rest-key"},
			expected:   "restaurant/rest-key/menu",
		},
		{
			name:       "two placeholders",
			descriptor: endpoint.RemoveCard,
			args:       []string{"user-token", "card-key"},
			expected:   "user/user-token/remove-card/card-key",
		},
		{
			name:       "missing argument",
			descriptor: endpoint.GetOrder,
			args:       nil,
			wantErr:    true,
		},
		{
			name:       "too many arguments",
			descriptor: endpoint.SignIn,
			args:       []string{"unexpected"},
			wantErr:    true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			path, err := testCase.descriptor.Resolve(testCase.args...)
			if testCase.wantErr {
				require.ErrorIs(t, err, endpoint.ErrArityMismatch)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, path)
		})
	}
}

func TestDescriptor_Arity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, endpoint.SendOrder.Arity())
	assert.Equal(t, 1, endpoint.UpdateUser.Arity())
	assert.Equal(t, 2, endpoint.RemoveAddress.Arity())

	assert.False(t, endpoint.ValidateOrder.RequiresSubstitution())
	assert.True(t, endpoint.OrderStatuses.RequiresSubstitution())
}
