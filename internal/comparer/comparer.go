// Package comparer reconciles and diffs the signature sets of two JSON
// documents. Reconciliation is what makes the comparison tolerant of fields
// that are legitimately null or absent on one side: an unknown path never
// conflicts with a concrete value at the same path on the other side.
package comparer

import (
	"regexp"
	"strings"

	"github.com/mcncl/jsonshape/internal/config"
	"github.com/mcncl/jsonshape/internal/errors"
	"github.com/mcncl/jsonshape/internal/extractor"
	"github.com/mcncl/jsonshape/internal/models"
)

// arrayIndexRegex matches one array-index path segment like "[3]".
var arrayIndexRegex = regexp.MustCompile(`\[\d+\]`)

// itemToken replaces array indices when a containment comparison treats all
// elements of an array as structurally interchangeable.
const itemToken = ".[item]"

// Comparer runs schema comparisons between two parsed documents.
type Comparer struct {
	config    *config.Config
	extractor *extractor.Extractor
}

// NewComparer creates a new Comparer instance with default configuration.
func NewComparer() *Comparer {
	return NewComparerWithConfig(config.NewConfig())
}

// NewComparerWithConfig creates a new Comparer instance with custom configuration.
func NewComparerWithConfig(cfg *config.Config) *Comparer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Comparer{
		config:    cfg,
		extractor: extractor.NewExtractorWithConfig(cfg),
	}
}

// Reconcile coarsens unknown-path signatures on each side so that a null or
// undefined node can match any concrete value at the same path opposite it.
// The two sides are evaluated independently: a signature is coarsened to a
// bare path only when the other side has some signature at that exact path.
// Both sides may coarsen the same path at once, in which case the two bare
// paths match each other.
func Reconcile(actual, expected []models.Signature) ([]models.Signature, []models.Signature) {
	unknownPaths := make(map[string]struct{})
	for _, sig := range actual {
		if sig.Kind.Unknown() {
			unknownPaths[sig.Path] = struct{}{}
		}
	}
	for _, sig := range expected {
		if sig.Kind.Unknown() {
			unknownPaths[sig.Path] = struct{}{}
		}
	}

	normActual := coarsen(actual, unknownPaths, pathSet(expected))
	normExpected := coarsen(expected, unknownPaths, pathSet(actual))
	return normActual, normExpected
}

func pathSet(sigs []models.Signature) map[string]struct{} {
	set := make(map[string]struct{}, len(sigs))
	for _, sig := range sigs {
		set[sig.Path] = struct{}{}
	}
	return set
}

// coarsen strips the kind off every signature whose path is unknown on some
// side, provided the other side knows the path at all.
func coarsen(sigs []models.Signature, unknownPaths, otherPaths map[string]struct{}) []models.Signature {
	out := make([]models.Signature, len(sigs))
	for i, sig := range sigs {
		if _, unknown := unknownPaths[sig.Path]; unknown {
			if _, present := otherPaths[sig.Path]; present {
				out[i] = models.Signature{Path: sig.Path}
				continue
			}
		}
		out[i] = sig
	}
	return out
}

// HaveSameSchema reports whether the two documents have exactly the same
// shape after unknown-path reconciliation. Comparison is over deduplicated
// signature sets; member order in the source documents is irrelevant.
func (c *Comparer) HaveSameSchema(actual, expected *models.Document) (models.Result, error) {
	actualSigs, expectedSigs, err := c.extractBoth(actual, expected)
	if err != nil {
		return models.Result{}, err
	}

	actualSigs, expectedSigs = Reconcile(actualSigs, expectedSigs)

	onlyInActual := difference(actualSigs, expectedSigs)
	onlyInExpected := difference(expectedSigs, actualSigs)
	return models.Result{
		Matched:        len(onlyInActual) == 0 && len(onlyInExpected) == 0,
		OnlyInActual:   onlyInActual,
		OnlyInExpected: onlyInExpected,
	}, nil
}

// ContainsSchemaOf is the containment comparison: array indices are rewritten
// to a wildcard so element count and position never matter, and optionally
// every path carrying the additional-properties placeholder token is dropped
// from both sides first.
//
// Note the verdict still requires BOTH set differences to be empty, i.e.
// exact structural equivalence after normalization rather than the strict
// superset the name suggests. That behavior is kept deliberately; loosening
// it would silently change the verdict of existing assertions.
func (c *Comparer) ContainsSchemaOf(actual, expected *models.Document, ignoreAdditionalProps bool) (models.Result, error) {
	actualSigs, expectedSigs, err := c.extractBoth(actual, expected)
	if err != nil {
		return models.Result{}, err
	}

	if ignoreAdditionalProps || c.config.Compare.IgnoreAdditionalProps {
		token := c.config.AdditionalPropToken()
		actualSigs = dropPathsContaining(actualSigs, token)
		expectedSigs = dropPathsContaining(expectedSigs, token)
	}

	actualSigs, expectedSigs = Reconcile(actualSigs, expectedSigs)

	actualSigs = normalizeIndices(actualSigs)
	expectedSigs = normalizeIndices(expectedSigs)

	onlyInActual := difference(actualSigs, expectedSigs)
	onlyInExpected := difference(expectedSigs, actualSigs)
	return models.Result{
		Matched:        len(onlyInActual) == 0 && len(onlyInExpected) == 0,
		OnlyInActual:   onlyInActual,
		OnlyInExpected: onlyInExpected,
	}, nil
}

// extractBoth validates and flattens the two documents. Nil documents fail
// here, before any traversal.
func (c *Comparer) extractBoth(actual, expected *models.Document) ([]models.Signature, []models.Signature, error) {
	if actual == nil {
		return nil, nil, errors.NewInputError("actual document is nil", errors.ErrNilDocument)
	}
	if expected == nil {
		return nil, nil, errors.NewInputError("expected document is nil", errors.ErrNilDocument)
	}

	actualSigs, err := c.extractor.ExtractDocument(actual)
	if err != nil {
		return nil, nil, err
	}
	expectedSigs, err := c.extractor.ExtractDocument(expected)
	if err != nil {
		return nil, nil, err
	}

	if len(c.config.Compare.IgnorePaths) > 0 {
		actualSigs = c.dropIgnoredPaths(actualSigs)
		expectedSigs = c.dropIgnoredPaths(expectedSigs)
	}
	return actualSigs, expectedSigs, nil
}

func (c *Comparer) dropIgnoredPaths(sigs []models.Signature) []models.Signature {
	out := sigs[:0:0]
	for _, sig := range sigs {
		if !c.config.ShouldIgnorePath(sig.Path) {
			out = append(out, sig)
		}
	}
	return out
}

// dropPathsContaining removes every signature whose path contains token.
func dropPathsContaining(sigs []models.Signature, token string) []models.Signature {
	if token == "" {
		return sigs
	}
	out := sigs[:0:0]
	for _, sig := range sigs {
		if !strings.Contains(sig.Path, token) {
			out = append(out, sig)
		}
	}
	return out
}

// normalizeIndices rewrites every "[n]" segment to the ".[item]" wildcard.
func normalizeIndices(sigs []models.Signature) []models.Signature {
	out := make([]models.Signature, len(sigs))
	for i, sig := range sigs {
		out[i] = models.Signature{
			Path: arrayIndexRegex.ReplaceAllString(sig.Path, itemToken),
			Kind: sig.Kind,
		}
	}
	return out
}

// difference returns the signatures of a that are absent from b, first
// occurrence only, preserving a's order.
func difference(a, b []models.Signature) []models.Signature {
	inB := make(map[models.Signature]struct{}, len(b))
	for _, sig := range b {
		inB[sig] = struct{}{}
	}

	seen := make(map[models.Signature]struct{}, len(a))
	var out []models.Signature
	for _, sig := range a {
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		if _, ok := inB[sig]; !ok {
			out = append(out, sig)
		}
	}
	return out
}
