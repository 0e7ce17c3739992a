// Package parser turns raw JSON text into models.Document trees ready for
// signature extraction.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsonshape/internal/errors"
	"github.com/mcncl/jsonshape/internal/models"
)

// Parse decodes a single JSON value from reader into a Document.
// Numbers are kept as json.Number so the extractor never loses precision.
func Parse(reader io.Reader) (*models.Document, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var rootValue models.JSONValue
	if err := decoder.Decode(&rootValue); err != nil {
		if stderrors.Is(err, io.EOF) {
			// Nothing was decoded: empty stream or whitespace only.
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		var unmarshalTypeError *json.UnmarshalTypeError
		if stderrors.As(err, &unmarshalTypeError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON type error at offset %d for type %s", unmarshalTypeError.Offset, unmarshalTypeError.Type),
				errors.ErrInvalidJSON,
			)
		}
		return nil, errors.NewParsingError("failed to decode JSON", err)
	}

	// Reject trailing data after the first value; whitespace up to EOF is fine.
	if decoder.More() {
		var trailing interface{}
		if err := decoder.Decode(&trailing); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
			}
		} else {
			return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	rootValue = normalizeJSONValue(rootValue)
	doc := &models.Document{Root: rootValue}
	if _, ok := rootValue.(models.JSONArray); ok {
		doc.RootIsArray = true
	}
	return doc, nil
}

// normalizeJSONValue converts raw decoded containers into our model types
func normalizeJSONValue(val models.JSONValue) models.JSONValue {
	switch v := val.(type) {
	case map[string]interface{}:
		obj := make(models.JSONObject, len(v))
		for key, value := range v {
			obj[key] = normalizeJSONValue(value)
		}
		return obj
	case []interface{}:
		arr := make(models.JSONArray, len(v))
		for i, value := range v {
			arr[i] = normalizeJSONValue(value)
		}
		return arr
	default:
		return v // Primitives (string, json.Number, bool, nil) are returned as is
	}
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (*models.Document, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseBytes parses JSON from a byte slice
func ParseBytes(data []byte) (*models.Document, error) {
	return ParseString(string(data))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (*models.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
