package people

import (
	"os"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(testPath(name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return data
}

func TestValidate_ValidRegistries(t *testing.T) {
	for _, file := range []string{"valid.json", "empty.json", "bad-date.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := Validate(readTestdata(t, file))
			if err != nil {
				t.Fatalf("Validate(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidate_InvalidRegistries(t *testing.T) {
	tests := []struct {
		file    string
		desc    string
		keyword string
	}{
		{"missing-name.json", "record without name", "required"},
		{"missing-surname.json", "record without surname", "required"},
		{"short-birthday.json", "birthday with two components", "minItems"},
		{"wrong-types.json", "non-string fields", "type"},
		{"not-array.json", "top-level object", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := Validate(readTestdata(t, tt.file))
			if err != nil {
				t.Fatalf("Validate(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has an empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("expected a %q issue for %s, got %+v", tt.keyword, tt.desc, result.Issues)
			}
		})
	}
}

func TestValidate_IssuePath(t *testing.T) {
	data := []byte(`[
		{"surname": "Doe", "name": "Jane", "birthday": ["2", "3", "1985"]},
		{"surname": "", "name": "John", "birthday": ["1", "5", "1990"]}
	]`)

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected empty surname to be rejected")
	}
	if got := result.Issues[0].Path; got != "/1/surname" {
		t.Errorf("Path = %q, want /1/surname", got)
	}
	if got := result.Issues[0].Keyword; got != "minLength" {
		t.Errorf("Keyword = %q, want minLength", got)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := Validate(readTestdata(t, "malformed.json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{
		Path: "people.json",
		Issues: []ValidationIssue{
			{Path: "/0", Message: "missing property 'name'", Keyword: "required"},
			{Message: "got object, want array", Keyword: "type"},
		},
	}
	want := "people.json does not match the registry schema: /0: missing property 'name'; got object, want array"
	if got := ve.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
