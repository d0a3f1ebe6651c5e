package fsm

import (
	"fmt"
	"os"
)

// LoadConfigAuto loads the graph from customPath when given, otherwise from the embedded document
func LoadConfigAuto[T any](m *Machine[T], customPath string, embedded []byte) error {
	if customPath == "" {
		return m.LoadConfig(embedded)
	}
	data, err := os.ReadFile(customPath)
	if err != nil {
		return fmt.Errorf("failed to read FSM config %s: %w", customPath, err)
	}
	if err := m.LoadConfig(data); err != nil {
		return fmt.Errorf("FSM config %s: %w", customPath, err)
	}
	return nil
}
