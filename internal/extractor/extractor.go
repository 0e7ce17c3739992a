// Package extractor flattens a JSON tree into path signatures, one per node.
// A signature records where a node lives ("$.user.id") and what category of
// value it holds, which is all the comparer needs to judge document shape.
package extractor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mcncl/jsonshape/internal/config"
	"github.com/mcncl/jsonshape/internal/errors"
	"github.com/mcncl/jsonshape/internal/models"
)

// Date/time patterns (ordered by specificity - most specific first)
var (
	rfc3339NanoRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{9}(Z|[+-]\d{2}:\d{2})$`)             // 2006-01-02T15:04:05.999999999Z
	rfc3339Regex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)            // 2006-01-02T15:04:05Z
	iso8601Regex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?([+-]\d{2}:\d{2}|Z|[+-]\d{4})?$`) // ISO8601 variants
	dateOnlyRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)                                                         // 2006-01-02
	dateTimeRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(\.\d+)?$`)                               // 2006-01-02 15:04:05
)

// workItem is one pending node in the breadth-first traversal. path is the
// full path of the node itself; the root carries the empty path.
type workItem struct {
	path string
	node models.JSONValue
}

// Extractor walks JSON trees and produces signatures. It never mutates its
// input.
type Extractor struct {
	config *config.Config
}

// NewExtractor creates a new Extractor instance with default configuration.
func NewExtractor() *Extractor {
	return &Extractor{config: config.NewConfig()}
}

// NewExtractorWithConfig creates a new Extractor instance with custom configuration.
func NewExtractorWithConfig(cfg *config.Config) *Extractor {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Extractor{config: cfg}
}

// Extract flattens value into one signature per node, containers included.
// Traversal is breadth-first with an explicit queue, so signatures come out
// shallow-to-deep; the order only affects diff-report readability, never the
// comparison verdict. Object keys are visited in sorted order to keep the
// output deterministic.
func (e *Extractor) Extract(value models.JSONValue) ([]models.Signature, error) {
	queue := []workItem{{path: "", node: value}}
	var signatures []models.Signature

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		switch v := item.node.(type) {
		case models.JSONObject:
			objectPath := item.path + "."
			if item.path == "" {
				objectPath = "$."
			}
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, key := range keys {
				queue = append(queue, workItem{
					path: objectPath + e.config.CanonicalKey(key),
					node: v[key],
				})
			}
			signatures = append(signatures, models.Signature{
				Path: strings.TrimSuffix(objectPath, "."),
				Kind: models.KindObject,
			})
		case models.JSONArray:
			base := item.path
			if base == "" {
				base = "$."
			}
			for i, element := range v {
				queue = append(queue, workItem{
					path: fmt.Sprintf("%s[%d]", base, i),
					node: element,
				})
			}
			signatures = append(signatures, models.Signature{
				Path: strings.TrimSuffix(item.path, "."),
				Kind: models.KindArray,
			})
		case string:
			signatures = append(signatures, models.Signature{
				Path: item.path,
				Kind: e.classifyString(v),
			})
		case json.Number:
			signatures = append(signatures, models.Signature{
				Path: item.path,
				Kind: models.KindNumber,
			})
		case bool:
			signatures = append(signatures, models.Signature{
				Path: item.path,
				Kind: models.KindBoolean,
			})
		case nil:
			signatures = append(signatures, models.Signature{
				Path: item.path,
				Kind: models.KindNull,
			})
		case models.Undefined:
			signatures = append(signatures, models.Signature{
				Path: item.path,
				Kind: models.KindUndefined,
			})
		default:
			return nil, errors.NewExtractionError(
				fmt.Sprintf("unsupported JSON value kind %T at path '%s'", v, item.path),
				errors.ErrUnsupportedKind,
			)
		}
	}

	return signatures, nil
}

// ExtractDocument extracts signatures from a parsed document. A nil document
// is rejected before any traversal begins.
func (e *Extractor) ExtractDocument(doc *models.Document) ([]models.Signature, error) {
	if doc == nil {
		return nil, errors.NewInputError("cannot extract signatures from a nil document", errors.ErrNilDocument)
	}
	return e.Extract(doc.Root)
}

// classifyString refines string values into dates. Detection is regex-based;
// a match on any built-in or configured pattern tags the value as a date.
func (e *Extractor) classifyString(s string) models.Kind {
	if !e.config.Dates.Enabled {
		return models.KindString
	}
	if rfc3339NanoRegex.MatchString(s) ||
		rfc3339Regex.MatchString(s) ||
		iso8601Regex.MatchString(s) ||
		dateOnlyRegex.MatchString(s) ||
		dateTimeRegex.MatchString(s) {
		return models.KindDate
	}
	if e.config.IsExtraDate(s) {
		return models.KindDate
	}
	return models.KindString
}
