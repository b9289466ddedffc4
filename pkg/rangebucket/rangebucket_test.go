package rangebucket_test

import (
	"testing"

	"workout-core/pkg/rangebucket"
)

func TestCookingTimeBoundaries(t *testing.T) {
	cases := []struct {
		bucket string
		value  int
		want   bool
	}{
		{"quick", 0, true},
		{"quick", 15, true},
		{"quick", 16, false},
		{"medium", 15, false},
		{"medium", 16, true},
		{"medium", 45, true},
		{"medium", 46, false},
		{"long", 45, false},
		{"long", 46, true},
		{"long", 240, true},
	}
	for _, tc := range cases {
		if got := rangebucket.CookingTime(tc.bucket).Contains(tc.value); got != tc.want {
			t.Errorf("CookingTime(%q).Contains(%d) = %v, want %v", tc.bucket, tc.value, got, tc.want)
		}
	}
}

func TestCaloriesBoundaries(t *testing.T) {
	cases := []struct {
		bucket string
		value  int
		want   bool
	}{
		{"low", 0, true},
		{"low", 300, true},
		{"low", 301, false},
		{"medium", 300, false},
		{"medium", 301, true},
		{"medium", 600, true},
		{"medium", 601, false},
		{"high", 600, false},
		{"high", 601, true},
	}
	for _, tc := range cases {
		if got := rangebucket.Calories(tc.bucket).Contains(tc.value); got != tc.want {
			t.Errorf("Calories(%q).Contains(%d) = %v, want %v", tc.bucket, tc.value, got, tc.want)
		}
	}
}

func TestCaseInsensitive(t *testing.T) {
	if !rangebucket.CookingTime("QUICK").Contains(10) {
		t.Error("bucket names should be case-insensitive")
	}
	if !rangebucket.Calories(" Low ").Contains(100) {
		t.Error("bucket names should be trimmed")
	}
}

func TestUnrecognizedBucketPassesThrough(t *testing.T) {
	r := rangebucket.CookingTime("instant")
	if !r.Unbounded() {
		t.Fatal("unrecognized bucket should be a pass-through range")
	}
	for _, v := range []int{0, 15, 10000} {
		if !r.Contains(v) {
			t.Errorf("pass-through range should contain %d", v)
		}
	}
}
