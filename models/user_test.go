package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordIsWriteOnly(t *testing.T) {
	var in User
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"email":"a@email.com","password":"hash"}`), &in))
	assert.Equal(t, "hash", in.Password)

	out, err := json.Marshal([]User{in})
	require.NoError(t, err)

	var fields []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &fields))
	require.Len(t, fields, 1)
	assert.NotContains(t, fields[0], "password")
	assert.Equal(t, "a@email.com", fields[0]["email"])
	assert.EqualValues(t, 4, fields[0]["id"])
}
