package test

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if !got {
		t.Errorf("expected %v to be true", got)
	}
}

func AssertFalse(t *testing.T, got bool) {
	t.Helper()

	if got {
		t.Errorf("expected %v to be false", got)
	}
}

func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// AssertSameKeys compares two key sets ignoring order.
func AssertSameKeys(t *testing.T, got, want []string) {
	t.Helper()

	gotSorted := append([]string(nil), got...)
	wantSorted := append([]string(nil), want...)

	sort.Strings(gotSorted)
	sort.Strings(wantSorted)

	if len(gotSorted) != len(wantSorted) {
		t.Errorf("expected keys %v, got %v", wantSorted, gotSorted)
		return
	}

	for i := range gotSorted {
		if gotSorted[i] != wantSorted[i] {
			t.Errorf("expected keys %v, got %v", wantSorted, gotSorted)
			return
		}
	}
}

func AssertError(t *testing.T, got, want error) {
	t.Helper()

	if !errors.Is(got, want) {
		t.Errorf("expected error %v, got %v", want, got)
	}
}

func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
