package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFixture reads a raw fixture file.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadJSONFixture decodes a JSON fixture into v.
func LoadJSONFixture(path string, v any) error {
	data, err := LoadFixture(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return nil
}

// LoadGolden decodes the expected output stored at path into v.
func LoadGolden(path string, v any) error {
	return LoadJSONFixture(path, v)
}
