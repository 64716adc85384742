package inject

import (
	"testing"

	"github.com/oukeidos/transdata/internal/apperrors"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		placeholder string
		data        string
		want        string
		wantErr     bool
	}{
		{
			name:        "Default placeholder",
			template:    "var translation_data = {/*@TRANSLATION_DATA@*/};",
			placeholder: DefaultPlaceholder,
			data:        `{"en":{}}`,
			want:        `var translation_data = {"en":{}};`,
		},
		{
			name:        "Every occurrence is replaced",
			template:    "a=X;b=X;",
			placeholder: "X",
			data:        "{}",
			want:        "a={};b={};",
		},
		{
			name:        "Data containing the placeholder is not rescanned",
			template:    "v=X",
			placeholder: "X",
			data:        `{"X":"X"}`,
			want:        `v={"X":"X"}`,
		},
		{
			name:        "Missing placeholder",
			template:    "nothing here",
			placeholder: DefaultPlaceholder,
			data:        "{}",
			wantErr:     true,
		},
		{
			name:        "Empty placeholder",
			template:    "abc",
			placeholder: "",
			data:        "{}",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render([]byte(tt.template), tt.placeholder, []byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if kind, _ := apperrors.KindOf(err); kind != apperrors.KindUsage {
					t.Fatalf("expected usage error, got %v", err)
				}
				return
			}
			if string(got) != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
