package main

import (
	"os"
	"path/filepath"
	"strings"
)

// HistoryManager keeps the shell's command history in a dotfile under the
// user's home directory.
type HistoryManager struct {
	history  []string
	filename string
}

func NewHistoryManager() *HistoryManager {
	home, _ := os.UserHomeDir()
	return &HistoryManager{
		filename: filepath.Join(home, ".gsqlite_history"),
	}
}

func (h *HistoryManager) Add(cmd string) {
	h.history = append(h.history, cmd)
}

func (h *HistoryManager) GetHistory() []string {
	return h.history
}

func (h *HistoryManager) Load() error {
	data, err := os.ReadFile(h.filename)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			h.history = append(h.history, line)
		}
	}
	return nil
}

func (h *HistoryManager) Save() error {
	file, err := os.Create(h.filename)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, cmd := range h.history {
		if _, err := file.WriteString(cmd + "\n"); err != nil {
			return err
		}
	}
	return nil
}
