package try_test

import (
	"errors"
	"testing"

	"github.com/modeldb/modeldb/pkg/utils/try"
)

type fakeFataler struct {
	fatal  bool
	helper bool
}

func (f *fakeFataler) Fatal(...any) {
	f.fatal = true
}

func (f *fakeFataler) Helper() {
	f.helper = true
}

func TestTo(t *testing.T) {
	t.Run("ok Either passes value through", func(t *testing.T) {
		testee := try.To(42, nil)

		v, err := testee.Get()
		if v != 42 || err != nil {
			t.Errorf("unexpected (value, err): (%v, %v)", v, err)
		}

		ftl := &fakeFataler{}
		if got := testee.OrFatal(ftl); got != 42 {
			t.Errorf("unexpected value: %v", got)
		}
		if ftl.fatal {
			t.Error("Fatal is called for ok Either")
		}

		if got := testee.OrDefault(0); got != 42 {
			t.Errorf("unexpected value: %v", got)
		}
	})

	t.Run("no-good Either holds error", func(t *testing.T) {
		expected := errors.New("fake")
		testee := try.To(0, expected)

		_, err := testee.Get()
		if !errors.Is(err, expected) {
			t.Errorf("unexpected error: %v", err)
		}

		ftl := &fakeFataler{}
		testee.OrFatal(ftl)
		if !ftl.fatal {
			t.Error("Fatal is not called for no-good Either")
		}
		if !ftl.helper {
			t.Error("Helper is not called before Fatal")
		}

		if got := testee.OrDefault(99); got != 99 {
			t.Errorf("unexpected value: %v", got)
		}
	})
}
