package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
)

// TestLoginRateLimit runs against production rate limits and hammers
// the login endpoint until the strict limiter cuts it off.
func TestLoginRateLimit(t *testing.T) {
	baseURL := startContainer(t, baseEnv())
	client := realtysdk.NewClient(baseURL)

	registerTestUser(t, client)

	// The strict profile allows a burst of 5. Somewhere in the next
	// few attempts the limiter must answer 429.
	var limited bool
	for i := 0; i < 10; i++ {
		_, err := client.Login(t.Context(), testEmail, "wrong-password")
		require.Error(t, err)
		if realtysdk.IsCode(err, "RATE_LIMITED") {
			limited = true
			break
		}
	}
	assert.True(t, limited, "login endpoint never rate limited")
}
