package profile

import (
	"hartlog/internal/domain/profile"
)

type getInput struct{}

type getOutput struct {
	Body profile.Profile
}
