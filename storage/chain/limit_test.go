package chain

import (
	"testing"
)

func TestLimitWord(t *testing.T) {
	testCases := map[string]struct {
		limit         int
		flag          bool
		expectedLimit int
		expectedFlag  bool
	}{
		"EvenLimitKept": {
			limit:         100,
			flag:          true,
			expectedLimit: 100,
			expectedFlag:  true,
		},
		"OddLimitRoundedDown": {
			limit:         5,
			flag:          false,
			expectedLimit: 4,
			expectedFlag:  false,
		},
		"OneFlooredAtTwo": {
			limit:         1,
			flag:          true,
			expectedLimit: 2,
			expectedFlag:  true,
		},
		"ZeroFlooredAtTwo": {
			limit:         0,
			flag:          false,
			expectedLimit: 2,
			expectedFlag:  false,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			word := newLimitWord(testCase.limit, testCase.flag)

			if word.limit() != testCase.expectedLimit {
				t.Fatalf("expected limit %d, got %d", testCase.expectedLimit, word.limit())
			}

			if word.flag() != testCase.expectedFlag {
				t.Fatalf("expected flag %t, got %t", testCase.expectedFlag, word.flag())
			}
		})
	}
}

func TestLimitWordFlagSurvivesSetLimit(t *testing.T) {
	word := newLimitWord(8, true)

	word.setLimit(16)

	if !word.flag() {
		t.Fatalf("expected the flag to survive a limit change")
	}

	if word.limit() != 16 {
		t.Fatalf("expected limit 16, got %d", word.limit())
	}

	word.setFlag(false)

	if word.limit() != 16 {
		t.Fatalf("expected the limit to survive a flag change, got %d", word.limit())
	}
}

func TestDefaultLimit(t *testing.T) {
	if limit := DefaultLimit[byte](); limit != 2048 {
		t.Fatalf("expected the default limit for bytes to be 2048, got %d", limit)
	}

	if limit := DefaultLimit[uint64](); limit != 256 {
		t.Fatalf("expected the default limit for uint64 to be 256, got %d", limit)
	}

	// Zero-sized elements must not divide by zero.
	if limit := DefaultLimit[struct{}](); limit != 2048 {
		t.Fatalf("expected the default limit for empty structs to be 2048, got %d", limit)
	}

	// Elements larger than the byte budget still get a workable limit.
	if limit := DefaultLimit[[4096]byte](); limit != 2 {
		t.Fatalf("expected the default limit for oversized elements to be 2, got %d", limit)
	}
}
