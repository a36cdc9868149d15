package authhandler

import "testing"

func TestParseStaffID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "205", want: 205},
		{raw: "hr001", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: " 1", wantErr: true},
		{raw: "-7", want: -7},
	}

	for _, tc := range tests {
		got, err := parseStaffID(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseStaffID(%q): expected error, got %d", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseStaffID(%q): unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("parseStaffID(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestGenerateTokenUnique(t *testing.T) {
	first, err := generateToken()
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	second, err := generateToken()
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct tokens")
	}
	if len(first) < 40 {
		t.Fatalf("token too short: %d chars", len(first))
	}
}
