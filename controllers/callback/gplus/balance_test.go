package gplus

import (
	"testing"

	"gplus/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceKnownMember(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()
	seedUser(t, "alice", 150.25)

	env := postJSON(t, app, "/v1/api/seamless/balance", map[string]any{
		"operator_code":  "OP01",
		"request_time":   float64(1719500000),
		"member_account": "alice",
	})

	assert.Equal(t, 200, env.Code)
	assert.Equal(t, 150.25, env.Balance)
	assert.Equal(t, 150.25, env.BeforeBalance)
}

func TestBalanceUnknownMember(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	env := postJSON(t, app, "/v1/api/seamless/balance", map[string]any{
		"operator_code":  "OP01",
		"request_time":   float64(1719500000),
		"member_account": "ghost",
	})

	assert.Equal(t, 1005, env.Code)
	assert.Equal(t, "Member not found", env.Message)
	assert.Zero(t, env.Balance)
}

func TestBalanceInactiveMember(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()
	user := seedUser(t, "bob", 10)
	require.NoError(t, database.DB.Model(&user).Update("is_active", false).Error)

	env := postJSON(t, app, "/v1/api/seamless/balance", map[string]any{
		"operator_code":  "OP01",
		"request_time":   float64(1719500000),
		"member_account": "bob",
	})

	assert.Equal(t, 1005, env.Code)
}

func TestBalanceValidation(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	env := postJSON(t, app, "/v1/api/seamless/balance", map[string]any{
		"operator_code": "OP01",
		"request_time":  float64(1719500000),
	})

	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "Validation failed", env.Message)
}
