package service

import "errors"

var (
	ErrValidation         = errors.New("some fields are missing")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotRegistered  = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("password is incorrect")
	ErrProductNotFound    = errors.New("product not found")
	ErrNoMatch            = errors.New("no product found")
)
