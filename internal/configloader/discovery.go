package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds the discovered configuration file locations. Missing files are
// empty strings.
type Paths struct {
	// User is the user-level config, e.g. ~/.config/pastemd/config.yaml.
	User string

	// Project is the nearest project config found searching upward from the
	// working directory.
	Project string

	// Explicit is the path given via --config.
	Explicit string
}

// projectConfigFiles are the project config names searched for, in order of
// preference.
var projectConfigFiles = []string{
	".pastemd.yml",
	".pastemd.yaml",
	"pastemd.yml",
	"pastemd.yaml",
}

var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths locates user and project configuration files.
func DiscoverPaths(ctx context.Context, workDir string) (*Paths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &Paths{User: findUserConfig()}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	return paths, nil
}

func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if runtime.GOOS == "windows" {
			if appData := os.Getenv("AppData"); appData != "" {
				return findConfigInDir(filepath.Join(appData, "pastemd"))
			}
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return findConfigInDir(filepath.Join(configHome, "pastemd"))
}

func findConfigInDir(dir string) string {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config file.
// The search stops at a VCS root, the home directory, or the filesystem
// root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, _ := os.UserHomeDir()

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range projectConfigFiles {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}
		if homeDir != "" && dir == homeDir {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
