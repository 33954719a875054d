package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/kk-code-lab/repodash/internal/report"
	"github.com/kk-code-lab/repodash/internal/style"
	"github.com/kk-code-lab/repodash/internal/textutil"
	"github.com/kk-code-lab/repodash/internal/tree"
)

const shortHashLen = 7

// BuildStatusLines assembles the status pane from the repo-status report. Each
// repository contributes a header with a clean/dirty badge followed by its raw
// status text in flat mode or a tree of its dirty files in tree mode.
func BuildStatusLines(status *report.Status, dirty *report.DirtyFiles, mode ViewMode, cfg *style.Config) []DisplayLine {
	if status == nil {
		return nil
	}
	var lines []DisplayLine
	for i := range status.Repos {
		repo := &status.Repos[i]
		lines = append(lines, DisplayLine{
			Text: statusHeader(repo),
			Kind: LineHeader,
		})
		if mode == ViewTree {
			files := report.FilterSubmodulePaths(dirtyFilesFor(dirty, repo.Name), repo.Submodules)
			lines = append(lines, treeLines(files)...)
			continue
		}
		lines = append(lines, blobLines(repo.StatusText)...)
	}
	applyGroupColors(lines, cfg)
	return lines
}

// BuildUnpushedLines assembles the unpushed pane from the unpushed-commits
// report. Repositories with nothing to push are skipped. Flat mode lists each
// commit with its touched files indented beneath it; tree mode folds every
// commit's files into one tree per repository. Submodule paths reported by the
// status report are filtered out either way.
func BuildUnpushedLines(unpushed *report.Unpushed, status *report.Status, mode ViewMode, cfg *style.Config) []DisplayLine {
	if unpushed == nil {
		return nil
	}
	var lines []DisplayLine
	for i := range unpushed.Repos {
		repo := &unpushed.Repos[i]
		if len(repo.Commits) == 0 {
			continue
		}
		submodules := submodulesFor(status, repo.Name)
		lines = append(lines, DisplayLine{
			Text: fmt.Sprintf("%s (%d)", textutil.Sanitize(repo.Name), len(repo.Commits)),
			Kind: LineHeader,
		})
		if mode == ViewTree {
			files := report.FilterSubmodulePaths(unionFiles(repo.Commits), submodules)
			lines = append(lines, treeLines(files)...)
			continue
		}
		for _, commit := range repo.Commits {
			lines = append(lines, commitLine(commit))
			for _, file := range report.FilterSubmodulePaths(commit.Files, submodules) {
				lines = append(lines, DisplayLine{
					Text: "    " + textutil.Sanitize(file),
					Path: file,
				})
			}
		}
	}
	applyGroupColors(lines, cfg)
	return lines
}

// LiveActivityEvents keeps only events still inside the marquee lifetime, so
// a freshly started session does not resurrect highlights that already
// expired while it was not running.
func LiveActivityEvents(activity *report.Activity, now time.Time) []report.Event {
	if activity == nil {
		return nil
	}
	live := make([]report.Event, 0, len(activity.Events))
	for _, ev := range activity.Events {
		if ev.Time.Add(MarqueeLifetime).After(now) {
			live = append(live, ev)
		}
	}
	return live
}

func statusHeader(repo *report.RepoStatus) string {
	badge := "[clean]"
	if repo.Dirty {
		badge = "[dirty]"
	}
	return textutil.Sanitize(repo.Name) + " " + badge
}

func commitLine(commit report.Commit) DisplayLine {
	subject := textutil.Sanitize(textutil.ExpandTabs(commit.Subject, textutil.DefaultTabWidth))
	hash := commit.Hash
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	return DisplayLine{Text: "  " + hash + " " + subject}
}

// blobLines splits a raw status blob into indented display rows, dropping
// blank lines the collector may leave at the end.
func blobLines(blob string) []DisplayLine {
	var lines []DisplayLine
	for _, raw := range strings.Split(blob, "\n") {
		text := textutil.Sanitize(textutil.ExpandTabs(raw, textutil.DefaultTabWidth))
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, DisplayLine{Text: "  " + text})
	}
	return lines
}

// treeLines renders a path list as indented tree rows. Directory rows carry a
// trailing separator on their path so color resolution treats them as
// directories.
func treeLines(paths []string) []DisplayLine {
	flattened := tree.Flatten(tree.Build(paths))
	lines := make([]DisplayLine, 0, len(flattened))
	for _, ln := range flattened {
		path := ln.Path
		if !ln.IsLeaf {
			path += "/"
		}
		lines = append(lines, DisplayLine{
			Text: "  " + textutil.Sanitize(ln.Text),
			Path: path,
		})
	}
	return lines
}

// unionFiles merges the file lists of several commits preserving first-seen
// order, so the tree view shows each touched file once.
func unionFiles(commits []report.Commit) []string {
	seen := make(map[string]bool)
	var union []string
	for _, commit := range commits {
		for _, file := range commit.Files {
			if seen[file] {
				continue
			}
			seen[file] = true
			union = append(union, file)
		}
	}
	return union
}

func dirtyFilesFor(dirty *report.DirtyFiles, name string) []string {
	if dirty == nil {
		return nil
	}
	for i := range dirty.Repos {
		if dirty.Repos[i].Name == name {
			return dirty.Repos[i].Files
		}
	}
	return nil
}

func submodulesFor(status *report.Status, name string) []string {
	if status == nil {
		return nil
	}
	for i := range status.Repos {
		if status.Repos[i].Name == name {
			return status.Repos[i].Submodules
		}
	}
	return nil
}

func applyGroupColors(lines []DisplayLine, cfg *style.Config) {
	headers := make([]bool, len(lines))
	for i := range lines {
		headers[i] = lines[i].Kind == LineHeader
	}
	colors := style.AssignGroupColors(headers, cfg)
	for i := range lines {
		lines[i].Color = colors[i]
	}
}
