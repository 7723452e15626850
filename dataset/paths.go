// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Item is everything needed to fetch and prepare one recording.
type Item struct {
	ID string `json:"id" yaml:"id"`

	OriginalURL  string `json:"original_url" yaml:"original_url"`
	OriginalName string `json:"original_name" yaml:"original_name"`
	OriginalDir  string `json:"original_dir" yaml:"original_dir"`

	SegmentURL    string `json:"segment_url" yaml:"segment_url"`
	ProcessedPath string `json:"processed_path" yaml:"processed_path"`

	LabelURL string `json:"label_url" yaml:"label_url"`
	LabelDir string `json:"label_dir" yaml:"label_dir"`
}

// Paths is the resolved layout of a release.
type Paths struct {
	Items []Item `json:"items" yaml:"items"`

	// MetadataURL is empty when the listing has no CSV file.
	MetadataURL  string `json:"metadata_url,omitempty" yaml:"metadata_url,omitempty"`
	MetadataName string `json:"metadata_name,omitempty" yaml:"metadata_name,omitempty"`
	MetadataDir  string `json:"metadata_dir" yaml:"metadata_dir"`
}

type listing struct {
	Files []listingFile `json:"files"`
}

type listingFile struct {
	Key   string `json:"key"`
	Links struct {
		Self string `json:"self"`
	} `json:"links"`
}

// Paths fetches the release listing and resolves every item's locations.
// Items keep listing order, or the order of Config.IDs when set.
func (l *Loader) Paths(ctx context.Context) (*Paths, error) {
	var lst listing
	if err := l.client.GetJSON(ctx, l.cfg.RecordsURL, &lst); err != nil {
		return nil, fmt.Errorf("fetching listing: %w", err)
	}

	return l.resolve(lst), nil
}

func (l *Loader) resolve(lst listing) *Paths {
	cfg := l.cfg
	originalDir := filepath.Join(cfg.Root, cfg.OriginalDir)
	processedDir := filepath.Join(cfg.Root, cfg.ProcessedDir)
	labelDir := filepath.Join(cfg.Root, cfg.LabelDir)

	p := &Paths{MetadataDir: originalDir}

	var audio []listingFile
	for _, f := range lst.Files {
		if strings.Contains(f.Key, ".csv") {
			if p.MetadataURL == "" {
				p.MetadataURL, p.MetadataName = f.Links.Self, f.Key
			}
			continue
		}
		if strings.Contains(f.Key, cfg.OriginalSuffix) {
			audio = append(audio, f)
		}
	}

	idOf := func(key string) string {
		id, _, _ := strings.Cut(key, cfg.OriginalSuffix)
		return id
	}

	if len(cfg.IDs) > 0 {
		var picked []listingFile
		for _, id := range cfg.IDs {
			for _, f := range audio {
				if idOf(f.Key) == id {
					picked = append(picked, f)
				}
			}
		}
		audio = picked
	}

	p.Items = slices.Grow(p.Items, len(audio))
	for _, f := range audio {
		id := idOf(f.Key)
		p.Items = append(p.Items, Item{
			ID:            id,
			OriginalURL:   f.Links.Self,
			OriginalName:  f.Key,
			OriginalDir:   originalDir,
			SegmentURL:    joinURL(cfg.SegmentURL, id+"_segment.txt"),
			ProcessedPath: filepath.Join(processedDir, id+cfg.ProcessedSuffix+".wav"),
			LabelURL:      joinURL(cfg.LabelURL, id+"_labels.txt"),
			LabelDir:      labelDir,
		})
	}

	return p
}

func joinURL(base, name string) string {
	return strings.TrimSuffix(base, "/") + "/" + name
}
