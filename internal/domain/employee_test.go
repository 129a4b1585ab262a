package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCodeRoundTrip(t *testing.T) {
	cases := []struct {
		role Role
		code int32
	}{
		{RoleAdmin, 1},
		{RolePartime, 2},
		{RoleFulltime, 3},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, c.role.Code())
		assert.True(t, c.role.IsValid())

		role, ok := RoleFromCode(c.code)
		assert.True(t, ok)
		assert.Equal(t, c.role, role)
	}

	_, ok := RoleFromCode(0)
	assert.False(t, ok)
	_, ok = RoleFromCode(4)
	assert.False(t, ok)

	assert.False(t, Role("MANAGER").IsValid())
}

func TestEmployeeJSONHidesSensitiveFields(t *testing.T) {
	employee := &Employee{
		ID:           1,
		Username:     "zhangsan1",
		PasswordHash: "$2a$10$abcdefg",
		Name:         "张三",
		Role:         RoleFulltime,
		Version:      3,
	}

	data, err := json.Marshal(employee)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.NotContains(t, m, "passwordHash")
	assert.NotContains(t, m, "version")
	assert.Equal(t, "zhangsan1", m["username"])
}
