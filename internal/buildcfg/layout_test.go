// SPDX-License-Identifier: MPL-2.0

package buildcfg

import (
	"errors"
	"testing"
)

func TestLayout_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Layout)
		field  string
	}{
		{name: "default is valid"},
		{name: "empty common dir", mutate: func(l *Layout) { l.CommonDir = "" }, field: "common_dir"},
		{name: "blank binding dir", mutate: func(l *Layout) { l.BindingDir = "  " }, field: "binding_dir"},
		{name: "empty compat dir", mutate: func(l *Layout) { l.CompatDir = "" }, field: "compat_dir"},
		{name: "no extensions", mutate: func(l *Layout) { l.SourceExtensions = nil }, field: "source_extensions"},
		{name: "extension without dot", mutate: func(l *Layout) { l.SourceExtensions = []string{"cpp"} }, field: "source_extensions"},
		{name: "bare dot", mutate: func(l *Layout) { l.SourceExtensions = []string{"."} }, field: "source_extensions"},
		{name: "extension with separator", mutate: func(l *Layout) { l.SourceExtensions = []string{".c/pp"} }, field: "source_extensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := DefaultLayout()
			if tt.mutate != nil {
				tt.mutate(&l)
			}
			err := l.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}

			if !errors.Is(err, ErrInvalidLayout) {
				t.Fatalf("Validate() error = %v, want ErrInvalidLayout", err)
			}
			var layoutErr *InvalidLayoutError
			if !errors.As(err, &layoutErr) || layoutErr.Field != tt.field {
				t.Errorf("Validate() error = %v, want field %q", err, tt.field)
			}
		})
	}
}

func TestNewBuilder_RejectsInvalidLayout(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder(nil, Layout{}); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("NewBuilder(empty layout) error = %v, want ErrInvalidLayout", err)
	}
}
