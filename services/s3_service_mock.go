package services

import (
	"fmt"
	"sync"
)

// MockExportUploader is an in-memory ExportUploader for testing
type MockExportUploader struct {
	uploads map[string][]byte // object key -> content
	failing bool
	mu      sync.RWMutex
}

// NewMockExportUploader creates a new mock uploader
func NewMockExportUploader() *MockExportUploader {
	return &MockExportUploader{
		uploads: make(map[string][]byte),
	}
}

// SetAsUploaderForTesting installs this mock as the global export uploader
func (m *MockExportUploader) SetAsUploaderForTesting() {
	SetExportUploader(m)
}

// FailUploads makes every subsequent upload return an error
func (m *MockExportUploader) FailUploads(fail bool) {
	m.mu.Lock()
	m.failing = fail
	m.mu.Unlock()
}

// UploadExport records the export in memory
func (m *MockExportUploader) UploadExport(filename string, content []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return "", fmt.Errorf("mock upload failure for %s", filename)
	}

	key := fmt.Sprintf("exports/mock_%s", filename)
	stored := make([]byte, len(content))
	copy(stored, content)
	m.uploads[key] = stored
	return key, nil
}

// Uploads returns a copy of everything uploaded (for test assertions)
func (m *MockExportUploader) Uploads() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uploads := make(map[string][]byte, len(m.uploads))
	for k, v := range m.uploads {
		uploads[k] = v
	}
	return uploads
}

// Clear removes all recorded uploads
func (m *MockExportUploader) Clear() {
	m.mu.Lock()
	m.uploads = make(map[string][]byte)
	m.mu.Unlock()
}
