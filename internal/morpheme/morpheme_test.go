// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morpheme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindRoot(t *testing.T) {
	r, ok := FindRoot("predict")
	assert.True(t, ok)
	assert.Equal(t, "dict", r.Text)
	assert.Equal(t, "say, speak", r.Meaning)
	assert.Equal(t, "Latin", r.Origin)

	_, ok = FindRoot("banana")
	assert.False(t, ok)
}

func TestFindRootPriorityOrder(t *testing.T) {
	// "spectograph" contains both "spec" and "graph"; the earlier table
	// entry wins.
	r, ok := FindRoot("spectograph")
	assert.True(t, ok)
	assert.Equal(t, "spec", r.Text)
}

func TestTablesAreLowercase(t *testing.T) {
	for _, tbl := range [][]Affix{Prefixes, Suffixes, Roots} {
		for _, a := range tbl {
			assert.NotEmpty(t, a.Text)
			assert.Equal(t, a.Text, strings.ToLower(a.Text))
		}
	}
}
