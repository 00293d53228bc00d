package slices_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/modeldb/modeldb/pkg/utils/cmp"
	"github.com/modeldb/modeldb/pkg/utils/slices"
)

func TestMap(t *testing.T) {
	t.Run("it maps each element", func(t *testing.T) {
		actual := slices.Map([]int{1, 2, 3}, strconv.Itoa)
		expected := []string{"1", "2", "3"}
		if !cmp.SliceEq(actual, expected) {
			t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
		}
	})
	t.Run("it maps empty slice to empty slice", func(t *testing.T) {
		actual := slices.Map([]int{}, strconv.Itoa)
		if len(actual) != 0 {
			t.Errorf("unexpected content: %v", actual)
		}
	})
}

func TestKeysOf(t *testing.T) {
	actual := slices.KeysOf(map[string]int{"a": 1, "b": 2, "c": 3})
	sort.Strings(actual)
	expected := []string{"a", "b", "c"}
	if !cmp.SliceEq(actual, expected) {
		t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
	}
}

func TestValuesOf(t *testing.T) {
	actual := slices.ValuesOf(map[string]int{"a": 1, "b": 2, "c": 3})
	sort.Ints(actual)
	expected := []int{1, 2, 3}
	if !cmp.SliceEq(actual, expected) {
		t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
	}
}

func TestToMap(t *testing.T) {
	type record struct {
		Id   string
		Name string
	}
	actual := slices.ToMap(
		[]record{{"x", "ex"}, {"y", "why"}},
		func(r record) string { return r.Id },
	)
	if len(actual) != 2 || actual["x"].Name != "ex" || actual["y"].Name != "why" {
		t.Errorf("unexpected content: %v", actual)
	}
}
