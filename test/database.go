package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path to a fresh SQLite file for the budget store.
// The file is removed with the test's temporary directory.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "budgets-"+uuid.NewString()+".db")
}
