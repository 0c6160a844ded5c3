package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrFoodNotFound = errors.New("food not found")
var ErrRoutineNotFound = errors.New("routine not found")
var ErrInvalidLevel = errors.New("invalid training level")
