package logging

import "testing"

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"console format", Config{Level: "debug", Format: "console", Development: true}, false},
		{"empty level defaults to info", Config{Format: "json"}, false},
		{"unknown level", Config{Level: "loud"}, true},
		{"unknown format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if logger == nil {
				t.Fatal("NewLogger returned nil logger")
			}
		})
	}
}

func TestGlobalDefaultsToNop(t *testing.T) {
	if Global() == nil {
		t.Fatal("Global() = nil before SetGlobal")
	}
	// Must not panic.
	Global().Named("test").Info("discarded")
}

func TestSetGlobal(t *testing.T) {
	prev := Global()
	defer SetGlobal(prev)

	logger := NewNop()
	SetGlobal(logger)
	if Global() != logger {
		t.Fatal("Global() did not return the logger passed to SetGlobal")
	}
}
