package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		start  []byte
		end    []byte
	}{
		"nil prefix covers everything": {},
		"simple prefix": {
			prefix: []byte{1, 3, 4},
			start:  []byte{1, 3, 4},
			end:    []byte{1, 3, 5},
		},
		"trailing 0xff carries over": {
			prefix: []byte{1, 3, 255},
			start:  []byte{1, 3, 255},
			end:    []byte{1, 4, 0},
		},
		"all 0xff has no end": {
			prefix: []byte{255, 255},
			start:  []byte{255, 255},
			end:    nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
