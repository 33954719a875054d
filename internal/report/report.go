package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// File names written by the external collectors into the report directory.
const (
	StatusFile   = "repo-status.json"
	UnpushedFile = "unpushed-commits.json"
	DirtyFile    = "dirty-files.json"
	ActivityFile = "live-activity.json"
)

// Status is the repository-status report: ordered repositories with a
// clean/dirty flag, a raw status blob and the list of known submodule paths.
type Status struct {
	Repos []RepoStatus `json:"repos"`
}

type RepoStatus struct {
	Name       string   `json:"name"`
	Dirty      bool     `json:"dirty"`
	StatusText string   `json:"status"`
	Submodules []string `json:"submodules,omitempty"`
}

// Unpushed is the unpushed-commits report.
type Unpushed struct {
	Repos []RepoCommits `json:"repos"`
}

type RepoCommits struct {
	Name    string   `json:"name"`
	Commits []Commit `json:"commits"`
}

type Commit struct {
	Hash    string   `json:"hash"`
	Subject string   `json:"subject"`
	Files   []string `json:"files"`
}

// DirtyFiles is the dirty-files report.
type DirtyFiles struct {
	Repos []RepoFiles `json:"repos"`
}

type RepoFiles struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// Activity is the live-activity report produced by the watch daemon.
type Activity struct {
	Events []Event `json:"events"`
}

type Event struct {
	Path string    `json:"path"`
	Time time.Time `json:"time"`
}

// LoadStatus reads and normalizes the repository-status report from dir.
func LoadStatus(dir string) (*Status, error) {
	var rep Status
	if err := readReport(filepath.Join(dir, StatusFile), &rep); err != nil {
		return nil, err
	}
	for i := range rep.Repos {
		repo := &rep.Repos[i]
		repo.Name = norm.NFC.String(repo.Name)
		for j, sub := range repo.Submodules {
			repo.Submodules[j] = normalizePath(sub)
		}
	}
	return &rep, nil
}

// LoadUnpushed reads and normalizes the unpushed-commits report from dir.
func LoadUnpushed(dir string) (*Unpushed, error) {
	var rep Unpushed
	if err := readReport(filepath.Join(dir, UnpushedFile), &rep); err != nil {
		return nil, err
	}
	for i := range rep.Repos {
		repo := &rep.Repos[i]
		repo.Name = norm.NFC.String(repo.Name)
		for j := range repo.Commits {
			commit := &repo.Commits[j]
			for k, f := range commit.Files {
				commit.Files[k] = normalizePath(f)
			}
		}
	}
	return &rep, nil
}

// LoadDirty reads and normalizes the dirty-files report from dir.
func LoadDirty(dir string) (*DirtyFiles, error) {
	var rep DirtyFiles
	if err := readReport(filepath.Join(dir, DirtyFile), &rep); err != nil {
		return nil, err
	}
	for i := range rep.Repos {
		repo := &rep.Repos[i]
		repo.Name = norm.NFC.String(repo.Name)
		for j, f := range repo.Files {
			repo.Files[j] = normalizePath(f)
		}
	}
	return &rep, nil
}

// LoadActivity reads and normalizes the live-activity report from dir.
func LoadActivity(dir string) (*Activity, error) {
	var rep Activity
	if err := readReport(filepath.Join(dir, ActivityFile), &rep); err != nil {
		return nil, err
	}
	for i := range rep.Events {
		rep.Events[i].Path = normalizePath(rep.Events[i].Path)
	}
	return &rep, nil
}

func readReport(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// normalizePath puts collector-supplied paths into one canonical shape:
// forward slashes and NFC, so prefix comparisons against submodule paths
// behave the same on every platform.
func normalizePath(p string) string {
	return norm.NFC.String(filepath.ToSlash(p))
}

// FilterSubmodulePaths drops paths that live inside one of the repository's
// known submodules, so files of nested repositories are not double counted in
// the parent's lists.
func FilterSubmodulePaths(paths, submodules []string) []string {
	if len(submodules) == 0 || len(paths) == 0 {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !underAny(p, submodules) {
			kept = append(kept, p)
		}
	}
	return kept
}

func underAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
