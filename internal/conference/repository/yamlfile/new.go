package yamlfile

import (
	"conference-tracker/internal/conference"
	pkgLog "conference-tracker/pkg/log"
)

type implRepository struct {
	l        pkgLog.Logger
	dataDir  string
	dataFile string
}

var _ conference.Repository = (*implRepository)(nil)

// New creates a file-backed conference repository. dataDir is the directory
// the data file must resolve inside of; dataFile is the file name or path
// relative to it.
func New(l pkgLog.Logger, dataDir, dataFile string) *implRepository {
	return &implRepository{
		l:        l,
		dataDir:  dataDir,
		dataFile: dataFile,
	}
}
