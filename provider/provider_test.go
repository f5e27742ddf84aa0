package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticCopiesInput(t *testing.T) {
	input := []string{"a", "b", "c"}
	p := NewStatic(input)

	input[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, p.Paths())
}

func TestStaticEmpty(t *testing.T) {
	p := NewStatic(nil)
	assert.Empty(t, p.Paths())
}
