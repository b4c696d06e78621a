package types

import "testing"

func TestValueString(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"int32", NewInt32(42), "42"},
		{"int64", NewInt64(-7), "-7"},
		{"float", NewFloat(1.5), "1.5"},
		{"double", NewDouble(2.25), "2.25"},
		{"string", NewString("Bill"), "Bill"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCastMismatch(t *testing.T) {
	v := NewInt32(1)
	if _, err := CastString(v); err == nil {
		t.Fatal("expected error casting int32 value to string")
	}
}

func TestCastMatch(t *testing.T) {
	v := NewString("Steve")
	got, err := CastString(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Steve" {
		t.Errorf("CastString() = %q, want %q", got, "Steve")
	}
}
