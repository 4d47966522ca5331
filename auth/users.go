package auth

import "techstore-admin/models"

type credential struct {
	user     models.User
	password string
}

// fixedUsers is the built-in account list.
var fixedUsers = []credential{
	{user: models.User{ID: "1", Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}, password: "password"},
	{user: models.User{ID: "2", Name: "User", Email: "user@example.com", Role: models.RoleUser}, password: "password"},
	{user: models.User{ID: "3", Name: "Owner", Email: "owner@example.com", Role: models.RoleSuperAdmin}, password: "password"},
}
