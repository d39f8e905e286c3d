package usecase

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrUserNotFound            = errors.New("user not found")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrSkillAlreadyExists      = errors.New("skill already exists")
	ErrGigNotFound             = errors.New("gig not found")
	ErrInternal                = errors.New("internal error")
)
