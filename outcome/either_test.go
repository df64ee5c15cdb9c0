package outcome_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/respond/outcome"
)

func TestMatchEither(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		e      outcome.Either[string, int]
		right  bool
		expect string
	}{
		"right": {e: outcome.Right[string](5), right: true, expect: "R5"},
		"left":  {e: outcome.Left[string, int]("oops"), expect: "Loops"},
		"zero":  {expect: "L"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.right, tc.e.IsRight())
			got := outcome.MatchEither(tc.e,
				func(r int) string { return "R" + strconv.Itoa(r) },
				func(l string) string { return "L" + l },
			)
			assert.Equal(t, tc.expect, got)
		})
	}
}
