package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampAvailable(t *testing.T) {
	tests := []struct {
		name      string
		available int
		total     int
		want      int
	}{
		{"within bounds", 5, 10, 5},
		{"at zero", 0, 10, 0},
		{"at total", 10, 10, 10},
		{"below zero", -3, 10, 0},
		{"above total", 12, 10, 10},
		{"zero total", 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampAvailable(tt.available, tt.total))
		})
	}
}

func TestApplyDelta(t *testing.T) {
	// checkout removes stock
	assert.Equal(t, 7, ApplyDelta(10, 10, -3))
	// check-in returns stock
	assert.Equal(t, 10, ApplyDelta(7, 10, 3))
	// return can never overshoot the total
	assert.Equal(t, 10, ApplyDelta(9, 10, 5))
	// removal can never undershoot zero
	assert.Equal(t, 0, ApplyDelta(2, 10, -5))
}

func TestRederiveAvailable(t *testing.T) {
	tests := []struct {
		name      string
		oldTotal  int
		oldAvail  int
		newTotal  int
		wantAvail int
	}{
		{"grow total preserves checked-out", 10, 4, 12, 6},
		{"shrink total preserves checked-out", 10, 4, 8, 2},
		{"shrink below checked-out clamps to zero", 10, 4, 5, 0},
		{"nothing checked out tracks total", 10, 10, 6, 6},
		{"everything checked out", 10, 0, 10, 0},
		{"shrink to zero", 10, 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RederiveAvailable(tt.oldTotal, tt.oldAvail, tt.newTotal)
			assert.Equal(t, tt.wantAvail, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, tt.newTotal)
		})
	}
}
