package cache

import (
	"testing"

	"interview-prep/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_EmptyAddress(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{})
	assert.Nil(t, client)
	assert.EqualError(t, err, "redis configuration is missing or address is empty")
}
