package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-warband/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("warrior")
	assert.Equal(t, "warrior_1", gen.Generate())
	assert.Equal(t, "warrior_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("knight").Generate()
	require.True(t, strings.HasPrefix(id, "knight_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "knight_"))
	assert.NoError(t, err)

	assert.NotEqual(t, idgen.NewUUID("").Generate(), idgen.NewUUID("").Generate())
}
