package language

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"fr", "French"},
		{"de", "German"},
		{"ja", "Japanese"},
		{"", ""},
		{"not a tag", ""},
		{"toolongsubtag", ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := DisplayName(tt.code); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestNativeName(t *testing.T) {
	if got := NativeName("ja"); got != "日本語" {
		t.Errorf("NativeName(ja) = %q", got)
	}
	if got := NativeName("not a tag"); got != "" {
		t.Errorf("NativeName(invalid) = %q, want empty", got)
	}
}

func TestParse_UnderscoreSeparator(t *testing.T) {
	tag, ok := Parse("pt_BR")
	if !ok {
		t.Fatalf("expected pt_BR to parse")
	}
	if got := tag.String(); got != "pt-BR" {
		t.Fatalf("tag = %q, want %q", got, "pt-BR")
	}
}
