package usecase

import (
	"conference-tracker/internal/extraction"
	pkgLog "conference-tracker/pkg/log"
	"conference-tracker/pkg/ollama"
	"conference-tracker/pkg/webfetch"
)

type implUseCase struct {
	l       pkgLog.Logger
	fetcher webfetch.IFetcher
	llm     ollama.IOllama
}

var _ extraction.UseCase = (*implUseCase)(nil)

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, fetcher webfetch.IFetcher, llm ollama.IOllama) *implUseCase {
	return &implUseCase{
		l:       l,
		fetcher: fetcher,
		llm:     llm,
	}
}
