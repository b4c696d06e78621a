package attributevector

import "testing"

func TestFitWidth(t *testing.T) {
	cases := []struct {
		size int
		want Width
	}{
		{0, Width1},
		{4, Width1},
		{254, Width1},
		{255, Width2},
		{1 << 16, Width4},
	}
	for _, tc := range cases {
		if got := FitWidth(tc.size); got != tc.want {
			t.Errorf("FitWidth(%d) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestVectorGetSetWidth1(t *testing.T) {
	v := New(Width1, 3)
	if err := v.Set(0, 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := v.Set(2, 200); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := v.Get(0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 5 {
		t.Errorf("Get(0) = %d, want 5", got)
	}
	if _, err := v.Get(3); err == nil {
		t.Fatal("expected range error for out-of-bounds Get")
	}
}

func TestVectorSetOutOfRange(t *testing.T) {
	v := New(Width2, 2)
	if err := v.Set(5, 1); err == nil {
		t.Fatal("expected range error for out-of-bounds Set")
	}
}

func TestInvalidValueIDNarrowsPerWidth(t *testing.T) {
	v1 := New(Width1, 1)
	if err := v1.Set(0, InvalidValueID); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := v1.Get(0)
	if ValueID(got) != ValueID(0xFF) {
		t.Errorf("width-1 sentinel round trip failed: got %d", got)
	}
}
