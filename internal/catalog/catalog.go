// Package catalog partitions captured records into static asset groups and
// normalized API endpoints.
package catalog

import (
	"fmt"
	"log/slog"
	"path"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/usestring/capture-apidoc/pkg/types"
)

// Catalog is the result of one classification pass over a record list.
// It is not modified after Build returns.
type Catalog struct {
	assets    map[string]map[string]map[string]struct{} // category -> dir -> filename set
	endpoints map[string][]types.Record                 // normalized path -> records, input order

	// Record indexes by destination.
	total        int
	assetIDs     *roaring.Bitmap
	apiIDs       *roaring.Bitmap
	discardedIDs *roaring.Bitmap
}

// Build classifies every record exactly once. Records without a return code
// are discarded; every other record lands in the asset groups or the API table.
func Build(records []types.Record, classifier *Classifier) *Catalog {
	c := &Catalog{
		total:        len(records),
		assets:       make(map[string]map[string]map[string]struct{}),
		endpoints:    make(map[string][]types.Record),
		assetIDs:     roaring.New(),
		apiIDs:       roaring.New(),
		discardedIDs: roaring.New(),
	}

	for i, rec := range records {
		id := uint32(i)

		if !rec.ReturnCode.Present() {
			c.discardedIDs.Add(id)
			continue
		}

		p, _ := ExtractPath(rec.Endpoint)

		if category, ok := classifier.Classify(p); ok {
			dir, file := splitAssetPath(p)
			c.addAsset(category, dir, file)
			c.assetIDs.Add(id)
			continue
		}

		key := NormalizeEndpoint(rec.Endpoint)
		c.endpoints[key] = append(c.endpoints[key], rec)
		c.apiIDs.Add(id)
	}

	slog.Debug("catalog built",
		slog.Int("records", len(records)),
		slog.Uint64("assets", c.assetIDs.GetCardinality()),
		slog.Uint64("api", c.apiIDs.GetCardinality()),
		slog.Uint64("discarded", c.discardedIDs.GetCardinality()),
		slog.Int("endpoints", len(c.endpoints)),
	)

	return c
}

func (c *Catalog) addAsset(category, dir, file string) {
	dirs, ok := c.assets[category]
	if !ok {
		dirs = make(map[string]map[string]struct{})
		c.assets[category] = dirs
	}
	files, ok := dirs[dir]
	if !ok {
		files = make(map[string]struct{})
		dirs[dir] = files
	}
	files[file] = struct{}{}
}

// splitAssetPath splits p into a directory that always ends with "/" and a filename.
func splitAssetPath(p string) (string, string) {
	dir, file := path.Split(p)
	if dir == "" {
		dir = "/"
	}
	return dir, file
}

// HasAssets reports whether any asset was recorded.
func (c *Catalog) HasAssets() bool {
	return len(c.assets) > 0
}

// Assets returns asset groups with categories, directories and filenames sorted.
func (c *Catalog) Assets() []types.AssetCategory {
	labels := make([]string, 0, len(c.assets))
	for label := range c.assets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]types.AssetCategory, 0, len(labels))
	for _, label := range labels {
		dirs := c.assets[label]

		dirNames := make([]string, 0, len(dirs))
		for dir := range dirs {
			dirNames = append(dirNames, dir)
		}
		sort.Strings(dirNames)

		category := types.AssetCategory{
			Label:       label,
			Directories: make([]types.AssetDirectory, 0, len(dirNames)),
		}
		for _, dir := range dirNames {
			files := make([]string, 0, len(dirs[dir]))
			for f := range dirs[dir] {
				files = append(files, f)
			}
			sort.Strings(files)
			category.Directories = append(category.Directories, types.AssetDirectory{Dir: dir, Files: files})
		}
		result = append(result, category)
	}
	return result
}

// EndpointPaths returns the normalized endpoint paths, sorted.
func (c *Catalog) EndpointPaths() []string {
	paths := make([]string, 0, len(c.endpoints))
	for p := range c.endpoints {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// records returns the records grouped under a normalized path, in input order.
func (c *Catalog) records(normalizedPath string) []types.Record {
	return c.endpoints[normalizedPath]
}

// Endpoints builds the endpoint views, sorted by path, with at most
// maxExamples examples each.
func (c *Catalog) Endpoints(maxExamples int) []types.Endpoint {
	paths := c.EndpointPaths()
	result := make([]types.Endpoint, 0, len(paths))
	for _, p := range paths {
		records := c.records(p)
		result = append(result, types.Endpoint{
			Path:         p,
			Method:       InferMethod(records),
			Count:        len(records),
			AuthRequired: anyAuthNeeded(records),
			Examples:     SelectExamples(records, maxExamples),
		})
	}
	return result
}

// AssetIDs returns the indexes of records classified as assets.
func (c *Catalog) AssetIDs() *roaring.Bitmap { return c.assetIDs.Clone() }

// APIIDs returns the indexes of records grouped under API endpoints.
func (c *Catalog) APIIDs() *roaring.Bitmap { return c.apiIDs.Clone() }

// DiscardedIDs returns the indexes of records dropped for a missing return code.
func (c *Catalog) DiscardedIDs() *roaring.Bitmap { return c.discardedIDs.Clone() }

// Verify checks that every record index was routed to exactly one of the
// asset, API and discarded sets.
func (c *Catalog) Verify() error {
	for _, pair := range []struct {
		name string
		a, b *roaring.Bitmap
	}{
		{"asset/api", c.assetIDs, c.apiIDs},
		{"asset/discarded", c.assetIDs, c.discardedIDs},
		{"api/discarded", c.apiIDs, c.discardedIDs},
	} {
		if overlap := roaring.And(pair.a, pair.b); !overlap.IsEmpty() {
			return fmt.Errorf("%s sets overlap on %d records, first index %d", pair.name, overlap.GetCardinality(), overlap.Minimum())
		}
	}

	routed := roaring.FastOr(c.assetIDs, c.apiIDs, c.discardedIDs)
	if int(routed.GetCardinality()) != c.total {
		return fmt.Errorf("routed %d of %d records", routed.GetCardinality(), c.total)
	}
	return nil
}

// Stats fills the classification counters of a RunStats.
func (c *Catalog) Stats() types.RunStats {
	stats := types.RunStats{
		Discarded: int(c.discardedIDs.GetCardinality()),
		Assets:    int(c.assetIDs.GetCardinality()),
		API:       int(c.apiIDs.GetCardinality()),
		Endpoints: len(c.endpoints),
	}
	for _, dirs := range c.assets {
		for _, files := range dirs {
			stats.AssetFiles += len(files)
		}
	}
	stats.Total = stats.Discarded + stats.Assets + stats.API
	return stats
}

func anyAuthNeeded(records []types.Record) bool {
	for _, r := range records {
		if r.AuthNeeded {
			return true
		}
	}
	return false
}
