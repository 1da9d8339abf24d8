package ringbuffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hedisam/chainpulse/internal/ringbuffer"
)

func TestRingBuffer(t *testing.T) {
	tests := map[string]struct {
		capacity        uint
		items           []int
		expectedEvicted int
		expectedNewest  []int
	}{
		"empty": {
			capacity:       3,
			expectedNewest: []int{},
		},
		"partially filled": {
			capacity:       3,
			items:          []int{1, 2},
			expectedNewest: []int{2, 1},
		},
		"wraps around": {
			capacity:        3,
			items:           []int{1, 2, 3, 4, 5},
			expectedEvicted: 2,
			expectedNewest:  []int{5, 4, 3},
		},
		"zero capacity defaults to one": {
			capacity:        0,
			items:           []int{1, 2},
			expectedEvicted: 1,
			expectedNewest:  []int{2},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			rb := ringbuffer.New[int](test.capacity)
			var evicted int
			for _, item := range test.items {
				if rb.Put(item) {
					evicted++
				}
			}

			assert.Equal(t, test.expectedEvicted, evicted)
			assert.Equal(t, len(test.expectedNewest), rb.Size())
			assert.Equal(t, test.expectedNewest, rb.NewestFirst())
		})
	}
}
