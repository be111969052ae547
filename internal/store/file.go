package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo/internal/todo"
)

// emptyList is the encoding written when the store file does not exist yet.
const emptyList = "[]"

// FileStore implements Store on a single JSON file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the store file, creating it with an empty list if it doesn't exist.
// Content that is not valid JSON or does not match the item schema yields ErrCorrupted.
func (s *FileStore) Load(ctx context.Context) ([]todo.Item, error) {
	logger := log.FromContext(ctx)

	if _, err := os.Stat(s.Path); errors.Is(err, os.ErrNotExist) {
		logger.Debug("creating store", "path", s.Path)
		if err := os.WriteFile(s.Path, []byte(emptyList), 0644); err != nil {
			return nil, fmt.Errorf("create store: %w", err)
		}
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	items, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	logger.Debug("loaded store", "path", s.Path, "items", len(items))
	return items, nil
}

// Save encodes items and overwrites the store file.
func (s *FileStore) Save(ctx context.Context, items []todo.Item) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	log.FromContext(ctx).Debug("saved store", "path", s.Path, "items", len(items))
	return nil
}

// Encode serializes items as a compact JSON array.
// A nil or empty slice encodes as [].
func Encode(items []todo.Item) ([]byte, error) {
	if items == nil {
		items = []todo.Item{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a JSON array of items, validating its shape first.
// Every failure wraps ErrCorrupted.
func Decode(data []byte) ([]todo.Item, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	schema, err := itemsSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, firstSchemaError(err))
	}

	var items []todo.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if items == nil {
		items = []todo.Item{}
	}
	return items, nil
}

const itemsSchemaURL = "todo-items.schema.json"

// itemsSchemaJSON describes the store file: an array of items.
// "due" may be omitted; unknown fields are ignored.
const itemsSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "done"],
    "properties": {
      "title": {"type": "string"},
      "due": {"type": ["string", "null"]},
      "done": {"type": "boolean"}
    }
  }
}`

func itemsSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(itemsSchemaURL, strings.NewReader(itemsSchemaJSON)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(itemsSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// SchemaError is a single schema violation located by a JSON path.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// firstSchemaError walks the validation error tree down to its first leaf.
func firstSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &SchemaError{
		Path:    jsonPointerToPath(ve.InstanceLocation),
		Message: ve.Message,
	}
}

// jsonPointerToPath converts "/1/title" to "[1].title".
func jsonPointerToPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
