package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover finds markdown files matching opts. It returns a sorted list of
// absolute paths, deduplicated across overlapping input paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions := opts.effectiveExtensions()

	seen := make(map[string]struct{})
	var files []string
	add := func(paths []string) {
		for _, p := range paths {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				files = append(files, p)
			}
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDir(ctx, absPath, workDir, extensions, opts)
			if err != nil {
				return nil, err
			}
			add(discovered)
		} else if includeFile(absPath, workDir, extensions, opts.ExcludeGlobs) {
			// Named files bypass the hidden-file rule but still honor
			// extension and exclude filters.
			add([]string{absPath})
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

func walkDir(ctx context.Context, root, workDir string, extensions []string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel := relativeTo(workDir, path)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesAny(rel, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil // broken symlink
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target rather than the link to avoid
				// recursing into the link itself.
				sub, err := walkDir(ctx, realPath, workDir, extensions, opts)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if includeFile(path, workDir, extensions, opts.ExcludeGlobs) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func relativeTo(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func includeFile(path, workDir string, extensions, excludes []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	found := false
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return !matchesAny(relativeTo(workDir, path), excludes)
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-normalized path against a glob, with support for
// the "**" patterns users write in exclude lists ("vendor/**", "**/drafts").
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

func matchDoubleStar(path, pattern string) bool {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	switch {
	case prefix == "" && suffix == "":
		return true
	case prefix == "":
		// "**/name": name anywhere in the path.
		if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if ok, err := filepath.Match(suffix, part); err == nil && ok {
				return true
			}
		}
		return false
	case suffix == "":
		// "dir/**": anything under dir.
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	default:
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		if strings.HasSuffix(path, suffix) {
			return true
		}
		ok, err := filepath.Match(suffix, filepath.Base(path))
		return err == nil && ok
	}
}
