package eatstreet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

func TestRoundUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "exact two decimals are unchanged", amount: 10.00, expected: 10.00},
		{name: "tiny remainder rounds up", amount: 10.001, expected: 10.01},
		{name: "large remainder rounds up", amount: 3.333, expected: 3.34},
		{name: "zero", amount: 0, expected: 0},
		{name: "accumulated float error rounds up", amount: 0.1 + 0.2, expected: 0.31},
		{name: "negative rounds away from zero", amount: -10.001, expected: -10.01},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, eatstreet.RoundUp(testCase.amount))
		})
	}
}
