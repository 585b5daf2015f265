package service

import "errors"

var (
	ErrTypeNotFound          = errors.New("type not found")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoRegistry            = errors.New("no type registry provided")
)
