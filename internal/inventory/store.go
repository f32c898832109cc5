package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store handles persistence of inventory data
type Store struct {
	filePath string
}

// NewStore creates a new inventory store
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
	}
}

// Save writes the inventory to disk as JSON
func (s *Store) Save(inv *Inventory) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write inventory file: %w", err)
	}

	return nil
}

// Load reads the inventory from disk
func (s *Store) Load() (*Inventory, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("inventory file not found: %s", s.filePath)
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse inventory file: %w", err)
	}
	if inv.Files == nil {
		inv.Files = make(map[string]*FileTokens)
	}

	return &inv, nil
}

// Exists checks if the inventory file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Delete removes the inventory file
func (s *Store) Delete() error {
	if !s.Exists() {
		return nil
	}
	return os.Remove(s.filePath)
}

// Path returns the file path where the inventory is stored
func (s *Store) Path() string {
	return s.filePath
}

// SaveCollector is a convenience method to save from a collector
func SaveCollector(collector *Collector, filePath string) error {
	return NewStore(filePath).Save(collector.Inventory())
}

// LoadToCollector is a convenience method to load into a new collector
func LoadToCollector(filePath string) (*Collector, error) {
	inv, err := NewStore(filePath).Load()
	if err != nil {
		return nil, err
	}

	collector := NewCollector()
	collector.inventory = inv

	return collector, nil
}
