package usecase

import (
	"conference-tracker/internal/conference"
	pkgLog "conference-tracker/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo conference.Repository
}

var _ conference.UseCase = (*implUseCase)(nil)

// New creates a new conference UseCase instance.
func New(l pkgLog.Logger, repo conference.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
