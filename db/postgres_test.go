package db

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestIntFromEnv(t *testing.T) {
	assert.Equal(t, 25, intFromEnv("DB_TEST_UNSET", 25))

	t.Setenv("DB_TEST_SET", "50")
	assert.Equal(t, 50, intFromEnv("DB_TEST_SET", 25))

	t.Setenv("DB_TEST_BAD", "lots")
	assert.Equal(t, 25, intFromEnv("DB_TEST_BAD", 25))
}
