// Package jsonshape compares the structure of two JSON documents: do they
// have the same shape, and does one document's shape cover the other's?
// Values are never compared, only paths and value kinds, and a field that is
// null or absent on one side is always compatible with a concrete value at
// the same path on the other side.
//
// The package is meant to sit behind a test assertion: on a mismatch the
// Result carries the signatures unique to each side, and Report renders them
// as a readable diff message.
package jsonshape

import (
	"github.com/mcncl/jsonshape/internal/comparer"
	"github.com/mcncl/jsonshape/internal/config"
	"github.com/mcncl/jsonshape/internal/formatter"
	"github.com/mcncl/jsonshape/internal/models"
	"github.com/mcncl/jsonshape/internal/parser"
)

// Document is one parsed JSON document.
type Document = models.Document

// JSONValue, JSONObject and JSONArray are the node types of a document tree.
// ParseDocument produces them; hand-built trees must use them too, since the
// extractor does not recognize plain map/slice types.
type (
	JSONValue  = models.JSONValue
	JSONObject = models.JSONObject
	JSONArray  = models.JSONArray
)

// Signature is a (path, kind) pair identifying one node in a JSON tree.
type Signature = models.Signature

// Kind is the value category of a JSON node.
type Kind = models.Kind

// Result is the outcome of one comparison.
type Result = models.Result

// Undefined marks a declared-but-valueless slot in a hand-built tree.
type Undefined = models.Undefined

// Config controls key canonicalization, date detection and path filtering.
type Config = config.Config

// Value kinds emitted by the extractor.
const (
	KindObject    = models.KindObject
	KindArray     = models.KindArray
	KindString    = models.KindString
	KindDate      = models.KindDate
	KindNumber    = models.KindNumber
	KindBoolean   = models.KindBoolean
	KindNull      = models.KindNull
	KindUndefined = models.KindUndefined
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// LoadConfig loads a configuration file (YAML).
func LoadConfig(path string) (*Config, error) {
	return config.LoadConfig(path)
}

// FindConfigFile locates the nearest .jsonshape.yml (or variant), walking up
// from the working directory. Returns "" when none exists.
func FindConfigFile() string {
	return config.FindConfigFile()
}

// ParseDocument parses a JSON document from bytes.
func ParseDocument(data []byte) (*Document, error) {
	return parser.ParseBytes(data)
}

// ParseDocumentString parses a JSON document from a string.
func ParseDocumentString(s string) (*Document, error) {
	return parser.ParseString(s)
}

// ParseDocumentFile parses a JSON document from a file path.
func ParseDocumentFile(path string) (*Document, error) {
	return parser.ParseFile(path)
}

// Comparison binds a configuration to the comparer and report formatter.
// The zero value is not usable; construct with New or NewWithConfig.
// A Comparison holds no per-call state and is safe for concurrent use.
type Comparison struct {
	comparer  *comparer.Comparer
	formatter *formatter.Formatter
}

// New creates a Comparison with default configuration.
func New() *Comparison {
	return NewWithConfig(nil)
}

// NewWithConfig creates a Comparison with the given configuration.
// A nil config falls back to defaults.
func NewWithConfig(cfg *Config) *Comparison {
	return &Comparison{
		comparer:  comparer.NewComparerWithConfig(cfg),
		formatter: formatter.NewFormatter(),
	}
}

// HaveSameSchema reports whether actual and expected have the same shape.
func (c *Comparison) HaveSameSchema(actual, expected *Document) (Result, error) {
	return c.comparer.HaveSameSchema(actual, expected)
}

// ContainsSchemaOf runs the containment comparison: array indices collapse to
// the .[item] wildcard and, when ignoreAdditionalProps is set, every path
// carrying the additional-properties placeholder token is dropped first.
func (c *Comparison) ContainsSchemaOf(actual, expected *Document, ignoreAdditionalProps bool) (Result, error) {
	return c.comparer.ContainsSchemaOf(actual, expected, ignoreAdditionalProps)
}

// Report renders the diff message for a result; empty when matched.
func (c *Comparison) Report(result Result) string {
	return c.formatter.Format(result)
}

// HaveSameSchema parses both JSON strings and compares their shapes with
// default configuration.
func HaveSameSchema(actualJSON, expectedJSON string) (Result, error) {
	c := New()
	actual, expected, err := parseBoth(actualJSON, expectedJSON)
	if err != nil {
		return Result{}, err
	}
	return c.HaveSameSchema(actual, expected)
}

// ContainsSchemaOf parses both JSON strings and runs the containment
// comparison with default configuration.
func ContainsSchemaOf(actualJSON, expectedJSON string, ignoreAdditionalProps bool) (Result, error) {
	c := New()
	actual, expected, err := parseBoth(actualJSON, expectedJSON)
	if err != nil {
		return Result{}, err
	}
	return c.ContainsSchemaOf(actual, expected, ignoreAdditionalProps)
}

// Report renders the diff message for a result; empty when matched.
func Report(result Result) string {
	return formatter.NewFormatter().Format(result)
}

func parseBoth(actualJSON, expectedJSON string) (*Document, *Document, error) {
	actual, err := parser.ParseString(actualJSON)
	if err != nil {
		return nil, nil, err
	}
	expected, err := parser.ParseString(expectedJSON)
	if err != nil {
		return nil, nil, err
	}
	return actual, expected, nil
}
