package contentline

import (
	"errors"
	"testing"
)

// Test content line tokenization

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Line
		wantErr bool
	}{
		{
			name:  "name and value",
			input: "FN:John Doe",
			want:  Line{Name: "FN", Value: "John Doe"},
		},
		{
			name:  "empty value",
			input: "EMAIL:",
			want:  Line{Name: "EMAIL", Value: ""},
		},
		{
			name:  "group",
			input: "foo.EMAIL:mail@example.com",
			want:  Line{Group: "foo", Name: "EMAIL", Value: "mail@example.com"},
		},
		{
			name:  "single parameter",
			input: "EMAIL;TYPE=work:mail@example.com",
			want:  Line{Name: "EMAIL", Params: []string{"TYPE=work"}, Value: "mail@example.com"},
		},
		{
			name:  "group and parameters",
			input: "item1.ADR;TYPE=home;PREF=1:;;123 Main St;Town;;;",
			want: Line{
				Group:  "item1",
				Name:   "ADR",
				Params: []string{"TYPE=home", "PREF=1"},
				Value:  ";;123 Main St;Town;;;",
			},
		},
		{
			name:  "value keeps colons",
			input: "URL:https://example.com/a:b",
			want:  Line{Name: "URL", Value: "https://example.com/a:b"},
		},
		{
			name:  "escaped semicolon in parameter",
			input: `N;SORT-AS=a\;b:x`,
			want:  Line{Name: "N", Params: []string{`SORT-AS=a\;b`}, Value: "x"},
		},
		{
			name:  "escaped colon in parameter",
			input: `X-A;B=c\:d:v`,
			want:  Line{Name: "X-A", Params: []string{`B=c\:d`}, Value: "v"},
		},
		{
			name:  "empty parameter segments dropped",
			input: "FN;;TYPE=x;:v",
			want:  Line{Name: "FN", Params: []string{"TYPE=x"}, Value: "v"},
		},
		{
			name:  "dotted group",
			input: "a.b.FN:v",
			want:  Line{Group: "a.b", Name: "FN", Value: "v"},
		},
		{
			name:  "escaped dot stays in group",
			input: `a\.b.FN:v`,
			want:  Line{Group: `a\.b`, Name: "FN", Value: "v"},
		},
		{
			name:  "leading dot stays in name",
			input: ".FN:v",
			want:  Line{Name: ".FN", Value: "v"},
		},
		{
			name:    "no value separator",
			input:   "FNJohn",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   ":value",
			wantErr: true,
		},
		{
			name:    "group without name",
			input:   "foo.:v",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				var lineErr *InvalidLineError
				if !errors.As(err, &lineErr) {
					t.Fatalf("err = %v, want InvalidLineError", err)
				}
				if lineErr.Line != tt.input {
					t.Errorf("Line = %q, want %q", lineErr.Line, tt.input)
				}
				if !IsRecoverable(err) {
					t.Errorf("IsRecoverable = false, want true")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got.Group != tt.want.Group {
				t.Errorf("Group = %q, want %q", got.Group, tt.want.Group)
			}
			if got.Name != tt.want.Name {
				t.Errorf("Name = %q, want %q", got.Name, tt.want.Name)
			}
			if got.Value != tt.want.Value {
				t.Errorf("Value = %q, want %q", got.Value, tt.want.Value)
			}
			if len(got.Params) != len(tt.want.Params) {
				t.Fatalf("Params = %q, want %q", got.Params, tt.want.Params)
			}
			for i := range got.Params {
				if got.Params[i] != tt.want.Params[i] {
					t.Errorf("Params[%d] = %q, want %q", i, got.Params[i], tt.want.Params[i])
				}
			}
		})
	}
}

func TestParse_ErrorReasons(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantReason string
	}{
		{"no separator", "FNJohn", "no value separator"},
		{"escaped separator only", `FN\:John`, "no value separator"},
		{"empty name", ":value", "missing property name"},
		{"group without name", "foo.:v", "missing property name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var lineErr *InvalidLineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("err = %v, want InvalidLineError", err)
			}
			if lineErr.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", lineErr.Reason, tt.wantReason)
			}
		})
	}
}
