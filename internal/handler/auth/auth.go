package auth

import (
	"blog-api/internal/service"
	"blog-api/internal/store"
)

var (
	usernameExists    = store.UsernameExists
	emailExists       = store.EmailExists
	createUser        = store.CreateUser
	getUserByUsername = store.GetUserByUsername
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
)
