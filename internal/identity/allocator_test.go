package identity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/identity"
)

func TestValid(t *testing.T) {
	assert.True(t, identity.Valid(1000))
	assert.True(t, identity.Valid(9999))
	assert.True(t, identity.Valid(4321))

	assert.False(t, identity.Valid(999))
	assert.False(t, identity.Valid(10000))
	assert.False(t, identity.Valid(0))
	assert.False(t, identity.Valid(-1234))
	// Унаследованный идентификатор из Date.now().
	assert.False(t, identity.Valid(1758912345678))
}

func TestAllocate_ReturnsFreeID(t *testing.T) {
	alloc := identity.NewWithSource(rand.New(rand.NewSource(1)))

	existing := map[string]struct{}{}
	seen := map[int64]struct{}{}

	for i := 0; i < 500; i++ {
		id, err := alloc.Allocate(existing)
		require.NoError(t, err)

		assert.True(t, identity.Valid(id))
		_, dup := seen[id]
		require.False(t, dup, "выданный идентификатор уже встречался")

		seen[id] = struct{}{}
		existing[identity.Key(id)] = struct{}{}
	}
}

func TestAllocate_LastFreeValueIsDeterministic(t *testing.T) {
	// Заняты 1000..9998 - свободно только 9999.
	existing := make(map[string]struct{}, 8999)
	for id := int64(1000); id <= 9998; id++ {
		existing[identity.Key(id)] = struct{}{}
	}

	alloc := identity.NewWithSource(rand.New(rand.NewSource(7)))
	id, err := alloc.Allocate(existing)

	require.NoError(t, err)
	assert.Equal(t, int64(9999), id)
}

func TestAllocate_SpaceExhausted(t *testing.T) {
	existing := make(map[string]struct{}, 9000)
	for id := int64(1000); id <= 9999; id++ {
		existing[identity.Key(id)] = struct{}{}
	}

	alloc := identity.New()
	_, err := alloc.Allocate(existing)

	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrSpaceExhausted)
}

func TestMigrateLegacyIDs(t *testing.T) {
	alloc := identity.NewWithSource(rand.New(rand.NewSource(42)))

	t.Run("замена только невалидных идентификаторов", func(t *testing.T) {
		existing := map[string]struct{}{}
		ids := []int64{1758912345678, 4321, 0, 9999}

		migrated, changed, err := alloc.MigrateLegacyIDs(ids, existing)
		require.NoError(t, err)
		assert.True(t, changed)

		assert.Equal(t, int64(4321), migrated[1])
		assert.Equal(t, int64(9999), migrated[3])
		for _, id := range migrated {
			assert.True(t, identity.Valid(id))
		}

		// Внутри партии нет коллизий.
		unique := map[int64]struct{}{}
		for _, id := range migrated {
			unique[id] = struct{}{}
		}
		assert.Len(t, unique, len(ids))
	})

	t.Run("идемпотентность", func(t *testing.T) {
		existing := map[string]struct{}{}
		first, changed, err := alloc.MigrateLegacyIDs([]int64{1758912345678, 1234}, existing)
		require.NoError(t, err)
		require.True(t, changed)

		second, changed, err := alloc.MigrateLegacyIDs(first, map[string]struct{}{})
		require.NoError(t, err)
		assert.False(t, changed, "повторный запуск не должен менять идентификаторы")
		assert.Equal(t, first, second)
	})

	t.Run("валидные идентификаторы пополняют exclusion set", func(t *testing.T) {
		existing := map[string]struct{}{}
		_, _, err := alloc.MigrateLegacyIDs([]int64{4321}, existing)
		require.NoError(t, err)

		_, ok := existing["4321"]
		assert.True(t, ok)
	})
}
