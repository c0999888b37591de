package offers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSystemRepository loads promotional offers from *.yaml files in a
// directory. Each file contains exactly one offer at the top level. Offers
// are loaded once at startup and held in memory; no hot reload.
type FileSystemRepository struct {
	dir    string
	offers []Offer
}

// NewFileSystemRepository creates a repository and eagerly loads all offers
// from dir. Returns an error if any offer file is malformed or invalid.
func NewFileSystemRepository(dir string) (*FileSystemRepository, error) {
	repo := &FileSystemRepository{dir: dir}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *FileSystemRepository) load() error {
	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil // no offers directory, valid (zero offers configured)
	}
	if err != nil {
		return fmt.Errorf("offers dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("offers path %q is not a directory", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("failed to read offers dir: %w", err)
	}

	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read offer file %s: %w", path, err)
		}

		var offer Offer
		if err := yaml.Unmarshal(content, &offer); err != nil {
			return fmt.Errorf("failed to parse offer file %s: %w", path, err)
		}
		if offer.Name == "" {
			return fmt.Errorf("offer file %s: missing name", path)
		}
		if offer.Text == "" {
			return fmt.Errorf("offer file %s: missing text", path)
		}
		if prev, dup := seen[offer.Name]; dup {
			return fmt.Errorf("duplicate offer name %q in %s (already defined in %s)", offer.Name, path, prev)
		}
		seen[offer.Name] = path

		r.offers = append(r.offers, offer)
	}

	slog.Info("[Offers] Loaded promotional offers", "dir", r.dir, "count", len(r.offers))
	return nil
}

// Offers returns all loaded offers in file order.
func (r *FileSystemRepository) Offers() []Offer {
	return r.offers
}
