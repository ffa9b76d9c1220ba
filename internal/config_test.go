package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply when only the secret is set", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("JWT_SECRET", "s3cret")

		config, err := LoadConfig()

		req.NoError(err)
		req.Equal(5001, config.Port)
		req.Equal(StoreBadger, config.StoreDriver)
		req.Equal(5*time.Minute, config.SweepInterval)
		req.Equal("0.0.0.0:5001", config.Addr())
		req.Equal([]string{"http://localhost:3000"}, config.Origins())
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("unknown store driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "StoreDriver")
	})

	t.Run("origins are split and trimmed", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example ,")

		config, err := LoadConfig()

		req.NoError(err)
		req.Equal([]string{"http://a.example", "http://b.example"}, config.Origins())
	})
}
