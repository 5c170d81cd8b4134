package catalog

import (
	"regexp"

	"github.com/usestring/capture-apidoc/internal/cache"
)

// Asset category labels.
const (
	CategoryChunks     = "JS Chunks"
	CategoryIcons      = "Icons (.svg, .ico)"
	CategoryImages     = "Images (.png, .jpg, .gif, .webp)"
	CategoryFonts      = "Fonts (.woff, .woff2, .ttf)"
	CategoryStyles     = "Styles (.css)"
	CategorySourceMaps = "Source Maps (.map)"
	CategoryScripts    = "Scripts (.js)"
)

// Rule maps paths matching Pattern to Category.
type Rule struct {
	Category string
	Pattern  *regexp.Regexp
}

// DefaultRules returns the asset rules in evaluation order.
// A narrower rule must precede the broader rule for the same extension:
// chunk files are scripts too, so CategoryChunks has to come before CategoryScripts.
func DefaultRules() []Rule {
	return []Rule{
		{CategoryChunks, regexp.MustCompile(`(?i)chunk-.*\.js$`)},
		{CategoryIcons, regexp.MustCompile(`(?i)\.(svg|ico)$`)},
		{CategoryImages, regexp.MustCompile(`(?i)\.(png|jpe?g|gif|webp|avif)$`)},
		{CategoryFonts, regexp.MustCompile(`(?i)\.(woff2?|ttf|otf|eot)$`)},
		{CategoryStyles, regexp.MustCompile(`(?i)\.css$`)},
		{CategorySourceMaps, regexp.MustCompile(`(?i)\.map$`)},
		{CategoryScripts, regexp.MustCompile(`(?i)\.(js|mjs|cjs)$`)},
	}
}

// Classifier assigns asset categories to request paths. First matching rule wins.
type Classifier struct {
	rules []Rule
	cache *cache.ClassificationCache // nil disables memoization
}

// NewClassifier creates a Classifier. A nil rules slice uses DefaultRules.
// cacheSize <= 0 disables the classification cache.
func NewClassifier(rules []Rule, cacheSize int) (*Classifier, error) {
	if rules == nil {
		rules = DefaultRules()
	}

	c := &Classifier{rules: rules}
	if cacheSize > 0 {
		lc, err := cache.NewClassificationCache(cacheSize)
		if err != nil {
			return nil, err
		}
		c.cache = lc
	}
	return c, nil
}

// Classify returns the category of path, or false if path is not an asset.
func (c *Classifier) Classify(path string) (string, bool) {
	if c.cache != nil {
		if hit, ok := c.cache.Get(path); ok {
			return hit.Category, hit.Matched
		}
	}

	category, matched := c.match(path)

	if c.cache != nil {
		c.cache.Put(path, cache.Classification{Category: category, Matched: matched})
	}
	return category, matched
}

func (c *Classifier) match(path string) (string, bool) {
	for _, rule := range c.rules {
		if rule.Pattern.MatchString(path) {
			return rule.Category, true
		}
	}
	return "", false
}
