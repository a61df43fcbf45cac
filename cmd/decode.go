// cmd/decode.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go_student_management/internal/model"
)

// decodeJSONFile は JSON ファイルを dst にデコードします。知らないキーはエラー。
func decodeJSONFile(path string, dst interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to parse %s: %v: %w", path, err, model.ErrInvalidInput)
	}
	return nil
}
