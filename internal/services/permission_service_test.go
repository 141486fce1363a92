package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleGrantsManagementByName(t *testing.T) {
	assert.True(t, RoleGrantsManagement("coordenador", 0))
	assert.True(t, RoleGrantsManagement("Coordenadora", 0))
	assert.True(t, RoleGrantsManagement("ADMIN", 10))
}

func TestRoleGrantsManagementByLevel(t *testing.T) {
	assert.False(t, RoleGrantsManagement("analista", 59))
	assert.True(t, RoleGrantsManagement("analista", 60))
	assert.True(t, RoleGrantsManagement("diretor", 100))
}

func TestRoleGrantsManagementDeniesOrdinaryRoles(t *testing.T) {
	assert.False(t, RoleGrantsManagement("membro", 10))
	assert.False(t, RoleGrantsManagement("", 0))
	assert.False(t, RoleGrantsManagement("coordenacao", 30))
}
