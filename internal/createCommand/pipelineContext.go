package createCommand

import (
	"path"

	"github.com/simplicity-js/installer/internal/fsutil"
)

const LogFileName = "simplicity-installer.log"

// PipelineContext holds the locations one create-project run works with. All
// paths use forward slashes.
type PipelineContext struct {
	ParentDir   string
	ProjectDir  string
	ProjectName string
	WorkingDir  string
	LogPath     string
	ArchivePath string
}

func NewPipelineContext(parentDir string, name string, workingDir string, archiveName string) *PipelineContext {
	parentDir = fsutil.NormalizePath(parentDir)
	projectDir := parentDir
	if name != "" {
		projectDir = path.Join(parentDir, fsutil.NormalizePath(name))
	}
	return &PipelineContext{
		ParentDir:   parentDir,
		ProjectDir:  projectDir,
		ProjectName: path.Base(projectDir),
		WorkingDir:  fsutil.NormalizePath(workingDir),
		LogPath:     path.Join(parentDir, LogFileName),
		ArchivePath: path.Join(projectDir, archiveName),
	}
}

// InWorkingDir reports whether the project is created in the directory the installer was started from.
func (pc *PipelineContext) InWorkingDir() bool {
	return fsutil.SamePath(pc.ProjectDir, pc.WorkingDir)
}
