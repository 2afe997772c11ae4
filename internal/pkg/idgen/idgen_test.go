package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skirmishforge/warband-api/internal/pkg/idgen"
)

func TestPrefixedGenerator(t *testing.T) {
	g := idgen.NewPrefixed("roster")

	id := g.Generate()
	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "roster", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], 8, "random suffix is 4 hex-encoded bytes")

	assert.NotEqual(t, id, g.Generate())
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("roster")

	assert.Equal(t, "roster_1", g.Generate())
	assert.Equal(t, "roster_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID("roster")

	id := g.Generate()
	require.True(t, strings.HasPrefix(id, "roster_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "roster_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("")
	_, err = uuid.Parse(bare.Generate())
	assert.NoError(t, err)
}
