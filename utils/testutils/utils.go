package testutils

import (
	"reflect"
	"testing"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// AssertApprox checks that two floats are equal, within a small tolerance.
func AssertApprox(t *testing.T, got, exp float32) {
	t.Helper()
	d := got - exp
	if d < 0 {
		d = -d
	}
	tol := float32(1e-4)
	if exp > 1 || exp < -1 {
		tol = exp * 1e-5
		if tol < 0 {
			tol = -tol
		}
	}
	if d > tol {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}
