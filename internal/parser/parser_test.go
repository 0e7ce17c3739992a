package parser

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/mcncl/jsonshape/internal/models"
)

func TestParse_SimpleObject(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30, "isStudent": false, "city": null}`
	doc, err := Parse(strings.NewReader(jsonStr))

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if doc.RootIsArray {
		t.Errorf("Parse() doc.RootIsArray = true, want false for an object")
	}

	expectedRoot := models.JSONObject{
		"name":      "John Doe",
		"age":       json.Number("30"),
		"isStudent": false,
		"city":      nil,
	}

	actualRoot, ok := doc.Root.(models.JSONObject)
	if !ok {
		t.Fatalf("Parse() root is not a models.JSONObject, got %T", doc.Root)
	}

	if !reflect.DeepEqual(actualRoot, expectedRoot) {
		t.Errorf("Parse() root = %v, want %v", actualRoot, expectedRoot)
	}
}

func TestParse_SimpleArray(t *testing.T) {
	jsonStr := `[1, "test", true, null, 3.14]`
	doc, err := Parse(strings.NewReader(jsonStr))

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if !doc.RootIsArray {
		t.Errorf("Parse() doc.RootIsArray = false, want true for an array")
	}

	expectedRoot := models.JSONArray{
		json.Number("1"),
		"test",
		true,
		nil,
		json.Number("3.14"),
	}
	actualRoot, ok := doc.Root.(models.JSONArray)
	if !ok {
		t.Fatalf("Parse() root is not a models.JSONArray, got %T", doc.Root)
	}

	if !reflect.DeepEqual(actualRoot, expectedRoot) {
		t.Errorf("Parse() root = %v, want %v", actualRoot, expectedRoot)
	}
}

func TestParse_NestedObject(t *testing.T) {
	jsonStr := `{"user": {"name": "Jane Doe", "id": 123}, "active": true, "tags": ["go", "json"]}`
	doc, err := Parse(strings.NewReader(jsonStr))

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	expectedRoot := models.JSONObject{
		"user": models.JSONObject{
			"name": "Jane Doe",
			"id":   json.Number("123"),
		},
		"active": true,
		"tags":   models.JSONArray{"go", "json"},
	}

	actualRoot, ok := doc.Root.(models.JSONObject)
	if !ok {
		t.Fatalf("Parse() root is not a models.JSONObject, got %T", doc.Root)
	}

	if !reflect.DeepEqual(actualRoot, expectedRoot) {
		t.Errorf("Parse() root = %v, want %v", actualRoot, expectedRoot)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if err == nil {
		t.Errorf("Parse() with empty reader, err = nil, want error")
	} else if !strings.Contains(err.Error(), "input is empty") {
		t.Errorf("Parse() with empty reader, err = %v, want error containing 'input is empty'", err)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := ParseString(input)
		if err == nil {
			t.Errorf("ParseString(%q) err = nil, want error", input)
		} else if !strings.Contains(err.Error(), "input string is empty or consists only of whitespace") {
			t.Errorf("ParseString(%q) err = %v, want error containing 'input string is empty or consists only of whitespace'", input, err)
		}
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30` // Missing closing brace
	_, err := Parse(strings.NewReader(jsonStr))
	if err == nil {
		t.Errorf("Parse() with malformed JSON, err = nil, want error")
	} else if !strings.Contains(err.Error(), "JSON syntax error") && !strings.Contains(err.Error(), "unexpected EOF") {
		// The exact error message can vary slightly based on Go versions
		t.Errorf("Parse() with malformed JSON, err = %v, want error containing 'JSON syntax error' or 'unexpected EOF'", err)
	}
}

func TestParse_MultipleRootValues(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"a": 1} {"b": 2}`))
	if err == nil {
		t.Errorf("Parse() with two root values, err = nil, want error")
	} else if !strings.Contains(err.Error(), "multiple JSON values") {
		t.Errorf("Parse() with two root values, err = %v, want error containing 'multiple JSON values'", err)
	}
}

func TestParseFile_SimpleObject(t *testing.T) {
	content := `{"product": "Laptop", "price": 1200.50}`
	tmpfile, err := os.CreateTemp("", "test_simple_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name()) // clean up

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	doc, err := ParseFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}

	expectedRoot := models.JSONObject{
		"product": "Laptop",
		"price":   json.Number("1200.50"),
	}

	actualRoot, ok := doc.Root.(models.JSONObject)
	if !ok {
		t.Fatalf("ParseFile() root is not a models.JSONObject, got %T", doc.Root)
	}

	if !reflect.DeepEqual(actualRoot, expectedRoot) {
		t.Errorf("ParseFile() root = %v, want %v", actualRoot, expectedRoot)
	}
}

func TestParseFile_NonExistentFile(t *testing.T) {
	_, err := ParseFile("nonexistentfile.json")
	if err == nil {
		t.Errorf("ParseFile() with non-existent file, err = nil, want error")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("ParseFile() with non-existent file, err = %v, want error containing 'not found'", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("")
	if err == nil {
		t.Errorf("ParseFile() with empty path, err = nil, want error")
	} else if !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("ParseFile() with empty path, err = %v, want error containing 'file path is empty'", err)
	}
}

func TestParseFile_EmptyFileContent(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_empty_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name()) // clean up

	// File is created, but nothing is written to it, so it's empty.
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	_, err = ParseFile(tmpfile.Name())
	if err == nil {
		t.Errorf("ParseFile() with empty file content, err = nil, want error")
	} else if !strings.Contains(err.Error(), "is empty") {
		t.Errorf("ParseFile() with empty file content, err = %v, want error containing 'is empty'", err)
	}
}

func TestParse_RootPrimitives(t *testing.T) {
	testCases := []struct {
		name        string
		jsonStr     string
		expectedVal interface{}
		expectArray bool
	}{
		{"RootString", `"hello world"`, "hello world", false},
		{"RootNumber", `123.45`, json.Number("123.45"), false},
		{"RootBooleanTrue", `true`, true, false},
		{"RootBooleanFalse", `false`, false, false},
		{"RootNull", `null`, nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tc.jsonStr))

			if err != nil {
				t.Fatalf("Parse() error = %v, wantErr nil for %s", err, tc.name)
			}

			if doc.RootIsArray != tc.expectArray {
				t.Errorf("Parse() doc.RootIsArray = %v, want %v for %s", doc.RootIsArray, tc.expectArray, tc.name)
			}

			if !reflect.DeepEqual(doc.Root, tc.expectedVal) {
				t.Errorf("Parse() root = %#v (type %T), want %#v (type %T) for %s", doc.Root, doc.Root, tc.expectedVal, tc.expectedVal, tc.name)
			}
		})
	}
}
