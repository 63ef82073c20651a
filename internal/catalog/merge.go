package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/lucsky/cuid"
	log "github.com/sirupsen/logrus"
)

// Candidate is one item proposed for addition by the maintenance
// merge. IDs are assigned on insertion.
type Candidate struct {
	Name        string
	Description string
	Price       int
	Category    string // machine key for the new item
	Dietary     []string
	SpiceLevel  int
}

// MergeResult summarises one merge run.
type MergeResult struct {
	Added             int
	Skipped           int
	CategoriesCreated int
}

// Merge appends candidates (grouped by target category display name)
// to the menu. A candidate is skipped when an existing item in the
// target category matches its name case-insensitively, which makes
// repeated runs idempotent. Missing categories are created with the
// candidate group's name.
func Merge(menu *models.Menu, candidates map[string][]Candidate) MergeResult {
	var result MergeResult

	// Deterministic category order so repeated runs write identical files.
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, categoryName := range names {
		group := candidates[categoryName]
		cat := menu.FindCategory(categoryName)
		if cat == nil {
			menu.Categories = append(menu.Categories, models.MenuCategory{
				ID:   slugify(categoryName),
				Name: categoryName,
			})
			cat = &menu.Categories[len(menu.Categories)-1]
			result.CategoriesCreated++
			log.Infof("created category %q", categoryName)
		}

		for _, cand := range group {
			if hasItemNamed(cat, cand.Name) {
				result.Skipped++
				log.Infof("skipping %q: already present in %q", cand.Name, categoryName)
				continue
			}
			cat.Items = append(cat.Items, models.MenuItem{
				ID:          cuid.New(),
				Name:        cand.Name,
				Description: cand.Description,
				Price:       cand.Price,
				Category:    cand.Category,
				Dietary:     cand.Dietary,
				SpiceLevel:  cand.SpiceLevel,
				IsAvailable: true,
			})
			result.Added++
			log.Infof("added %q to %q", cand.Name, categoryName)
		}
	}
	return result
}

// MergeFile runs Merge against a catalog file and overwrites it with
// pretty-printed JSON. Zero additions is still success.
func MergeFile(path string, candidates map[string][]Candidate) (MergeResult, error) {
	menu, err := LoadMenu(path)
	if err != nil {
		return MergeResult{}, err
	}

	result := Merge(menu, candidates)

	data, err := json.MarshalIndent(menu, "", "  ")
	if err != nil {
		return MergeResult{}, fmt.Errorf("failed to serialize catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return MergeResult{}, fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	log.Infof("merge complete: %d added, %d skipped, %d categories created",
		result.Added, result.Skipped, result.CategoriesCreated)
	return result, nil
}

func hasItemNamed(cat *models.MenuCategory, name string) bool {
	for _, item := range cat.Items {
		if strings.EqualFold(item.Name, name) {
			return true
		}
	}
	return false
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
