package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema(t *testing.T) {
	for _, table := range []string{"folders", "decks", "cards", "review_logs"} {
		assert.True(t, strings.Contains(Schema, "CREATE TABLE IF NOT EXISTS "+table), "missing table %s", table)
	}
}
