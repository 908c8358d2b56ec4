package github

import (
	"fmt"
	"strings"

	"github.com/simplicity-js/installer/internal/fsutil"
	"github.com/simplicity-js/installer/internal/sh"
)

const APIBase = "https://api.github.com"

type ArchiveFormat string

const (
	Zip ArchiveFormat = "zip"
	Tar ArchiveFormat = "tar"
)

// DownloadSpec describes one repository archive download.
type DownloadSpec struct {
	Owner           string
	Repo            string
	Format          ArchiveFormat // anything other than zip or tar is treated as zip
	Token           string        // optional
	OutputDirectory string        // optional
	OutputFilename  string
}

func (s DownloadSpec) format() ArchiveFormat {
	if s.Format == Tar {
		return Tar
	}
	return Zip
}

// ArchiveURL is the REST endpoint that redirects to the archive of the default branch.
func (s DownloadSpec) ArchiveURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/%sball", APIBase, s.Owner, s.Repo, s.format())
}

func (s DownloadSpec) OutputPath() string {
	if s.OutputDirectory == "" {
		return s.OutputFilename
	}
	return fsutil.NormalizePath(s.OutputDirectory) + "/" + s.OutputFilename
}

// BuildDownloadCommand returns the curl invocation that saves the archive described by spec.
func BuildDownloadCommand(spec DownloadSpec) sh.ShellCommand {
	var command strings.Builder
	command.WriteString(`curl -L -H "Accept: application/vnd.github+json"`)
	if spec.Token != "" {
		fmt.Fprintf(&command, ` -H "Authorization: Bearer %s"`, spec.Token)
	}
	fmt.Fprintf(&command, " -o %s %s", sh.Quote(spec.OutputPath()), spec.ArchiveURL())
	return sh.ShellCommand(command.String())
}
