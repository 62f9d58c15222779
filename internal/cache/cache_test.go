package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infenixDeveloper/artegallera-backend/internal/cache"
)

func TestCacheKeys(t *testing.T) {
	t.Run("event key encodes room and page", func(t *testing.T) {
		assert.Equal(t, "messages:event:42:limit:50:offset:0", cache.EventKey(42, 50, 0))
		assert.Equal(t, "messages:event:7:limit:100:offset:200", cache.EventKey(7, 100, 200))
	})

	t.Run("general key never collides with event keys", func(t *testing.T) {
		assert.Equal(t, "messages:general:limit:50:offset:0", cache.GeneralKey(50, 0))
		assert.NotEqual(t, cache.GeneralKey(50, 0), cache.EventKey(0, 50, 0))
	})
}
