package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Missing Key Uses Default", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("PORTAL_TEST_MISSING", "fallback"))
		assert.Equal(t, 7, GetEnvInt("PORTAL_TEST_MISSING", 7))
	})

	t.Run("Invalid Int Uses Default", func(t *testing.T) {
		t.Setenv("PORTAL_TEST_INT", "abc")
		assert.Equal(t, 3, GetEnvInt("PORTAL_TEST_INT", 3))
	})

	t.Run("Bool And Float", func(t *testing.T) {
		t.Setenv("PORTAL_TEST_BOOL", "true")
		t.Setenv("PORTAL_TEST_FLOAT", "2.5")
		assert.True(t, GetEnvBool("PORTAL_TEST_BOOL", false))
		assert.Equal(t, 2.5, GetEnvFloat("PORTAL_TEST_FLOAT", 0))
	})

	t.Run("Surrounding Spaces Are Trimmed", func(t *testing.T) {
		t.Setenv("PORTAL_TEST_INT", " 42 ")
		t.Setenv("PORTAL_TEST_STRING", "  ")
		assert.Equal(t, 42, GetEnvInt("PORTAL_TEST_INT", 0))
		assert.Equal(t, "fallback", GetEnvString("PORTAL_TEST_STRING", "fallback"))
	})

	t.Run("Slice Without Items Uses Default", func(t *testing.T) {
		t.Setenv("PORTAL_TEST_SLICE", " , ,")
		assert.Equal(t, []string{"http://localhost:3000"}, GetEnvStringSlice("PORTAL_TEST_SLICE", []string{"http://localhost:3000"}))
	})

	t.Run("Comma Separated Slice", func(t *testing.T) {
		t.Setenv("PORTAL_TEST_SLICE", "http://a.test, http://b.test,,")
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvStringSlice("PORTAL_TEST_SLICE", nil))
	})
}
