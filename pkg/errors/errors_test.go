package errors_test

import (
	"errors"
	"strings"
	"testing"

	xe "github.com/modeldb/modeldb/pkg/errors"
)

type myErr struct{}

func (myErr) Error() string {
	return "error type for test"
}

func TestWrap(t *testing.T) {
	t.Run("it keeps the cause reachable with errors.Is/As", func(t *testing.T) {
		cause := myErr{}
		testee := xe.Wrap(cause)

		if !errors.Is(testee, cause) {
			t.Error("wrapped error does not match its cause")
		}

		detected := myErr{}
		if !errors.As(testee, &detected) {
			t.Error("wrapped error cannot be unwrapped to its cause type")
		}
	})

	t.Run("it records the location where it is created", func(t *testing.T) {
		testee := xe.New("test error")
		message := testee.Error()

		if !strings.Contains(message, "errors_test") {
			t.Errorf("message does not contain caller location: %s", message)
		}
		if !strings.Contains(message, "test error") {
			t.Errorf("message does not contain original text: %s", message)
		}
	})

	t.Run("it records note when given", func(t *testing.T) {
		testee := xe.WrapWithNote("while testing", errors.New("inner"))
		message := testee.Error()

		if !strings.Contains(message, "while testing") {
			t.Errorf("message does not contain note: %s", message)
		}
	})
}
