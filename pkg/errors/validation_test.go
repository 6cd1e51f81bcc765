package errors

import (
	"strings"
	"testing"
)

func TestValidateElementID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple id", id: "n42", wantErr: false},
		{name: "coordinate id", id: "3_7", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "control character", id: "a\x00b", wantErr: true},
		{name: "newline", id: "a\nb", wantErr: true},
		{name: "too long", id: strings.Repeat("x", 257), wantErr: true},
		{name: "max length", id: strings.Repeat("x", 256), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateElementID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateElementID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidElementID) {
				t.Errorf("expected code %v, got %v", ErrCodeInvalidElementID, GetCode(err))
			}
		})
	}
}

func TestValidateAttributeName(t *testing.T) {
	tests := []struct {
		name    string
		attr    string
		wantErr bool
	}{
		{name: "simple name", attr: "weight", wantErr: false},
		{name: "dotted name", attr: "ui.color", wantErr: false},
		{name: "empty", attr: "", wantErr: true},
		{name: "control character", attr: "a\tb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttributeName(tt.attr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAttributeName(%q) error = %v, wantErr %v", tt.attr, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "relative path", path: "out/graph.json", wantErr: false},
		{name: "absolute path", path: "/tmp/graph.svg", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "traversal", path: "../../etc/passwd", wantErr: true},
		{name: "windows traversal", path: "..\\secrets", wantErr: true},
		{name: "null byte", path: "out\x00.json", wantErr: true},
		{name: "too long", path: strings.Repeat("a/", 300), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("expected code %v, got %v", ErrCodeInvalidPath, GetCode(err))
			}
		})
	}
}
