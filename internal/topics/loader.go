package topics

import (
	"os"
	"path/filepath"
	"strings"
)

// Load returns the embedded catalog merged with any user topic files.
// Search order for user files: customPath (a single file) if given,
// otherwise every *.yaml under ~/.letterfall/topics/. Unreadable or invalid
// user files are skipped; the embedded defaults always load.
func Load(customPath string) (*Catalog, error) {
	catalog := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, err
		}
		user, err := Parse(data)
		if err != nil {
			return nil, err
		}
		catalog.Merge(user)
		return catalog, nil
	}

	dir := userTopicsDir()
	if dir == "" {
		return catalog, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return catalog, nil // No user topics directory is fine
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		user, err := Parse(data)
		if err != nil {
			// Skip invalid files
			continue
		}
		catalog.Merge(user)
	}

	return catalog, nil
}

// userTopicsDir returns the user topics directory, or empty if the home
// directory is unavailable.
func userTopicsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".letterfall", "topics")
}
