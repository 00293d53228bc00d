package tuple_test

import (
	"testing"

	"github.com/modeldb/modeldb/pkg/utils/cmp"
	"github.com/modeldb/modeldb/pkg/utils/tuple"
)

func TestUnzipPair(t *testing.T) {
	input := []tuple.Pair[string, int]{
		tuple.PairOf("one", 1),
		tuple.PairOf("two", 2),
		tuple.PairOf("three", 3),
	}

	actualStr, actualInt := tuple.UnzipPair(input)

	expectedStr := []string{"one", "two", "three"}
	expectedInt := []int{1, 2, 3}

	if !cmp.SliceEq(actualStr, expectedStr) {
		t.Errorf("unmatch: first: (actual, expected) != (%+v, %+v)", actualStr, expectedStr)
	}

	if !cmp.SliceEq(actualInt, expectedInt) {
		t.Errorf("unmatch: second: (actual, expected) != (%+v, %+v)", actualInt, expectedInt)
	}
}

func TestToMap(t *testing.T) {
	input := []tuple.Pair[string, int]{
		tuple.PairOf("one", 1),
		tuple.PairOf("two", 2),
		tuple.PairOf("one", 10),
	}

	actual := tuple.ToMap(input)

	if len(actual) != 2 || actual["one"] != 10 || actual["two"] != 2 {
		t.Errorf("unexpected content: %v", actual)
	}
}
