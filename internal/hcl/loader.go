package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/ctxlog"
	"github.com/vk/plategen/internal/fsutil"
	"github.com/vk/plategen/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL site data loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL loading process. It is agnostic to the
// origin of the paths and accepts food and recipe blocks from any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Site, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	site := &config.Site{
		Foods:   make(map[string]*config.Food),
		Recipes: make(map[string]*config.Recipe),
	}

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.SiteRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, f := range root.Foods {
			food, err := l.translateFood(f)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			if _, exists := site.Foods[food.ID]; exists {
				logger.Warn("Duplicate food definition found, it will be overwritten.", "id", food.ID)
			}
			site.Foods[food.ID] = food
		}
		for _, r := range root.Recipes {
			recipe, err := l.translateRecipe(r)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			if _, exists := site.Recipes[recipe.Slug]; exists {
				logger.Warn("Duplicate recipe definition found, it will be overwritten.", "slug", recipe.Slug)
			}
			site.Recipes[recipe.Slug] = recipe
		}
	}

	logger.Debug("HCL loading complete.", "foods", len(site.Foods), "recipes", len(site.Recipes))
	return site, nil
}

// findAllHCLFiles resolves the given paths, walking directories, and
// returns a deduplicated flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}

	return allFiles, nil
}
