package translate

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrom(t *testing.T) {
	assert.Equal(t, "opcode $CD", From("opcode $%02X", 0xcd))
	assert.Equal(t, "plain", From("plain"))
}
