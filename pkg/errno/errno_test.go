package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		if got := ConvertErr(nil); got.ErrCode != SuccessCode {
			t.Errorf("expected success, got %v", got)
		}
	})

	t.Run("errno passes through", func(t *testing.T) {
		if got := ConvertErr(RecordNotFoundErr); got.ErrCode != RecordNotFoundCode {
			t.Errorf("expected record not found, got %v", got)
		}
	})

	t.Run("wrapped errno unwraps", func(t *testing.T) {
		wrapped := errors.Wrap(TokenInvalidErr, "middleware")
		if got := ConvertErr(wrapped); got.ErrCode != TokenInvalidCode {
			t.Errorf("expected token invalid, got %v", got)
		}
	})

	t.Run("unknown error becomes service error", func(t *testing.T) {
		got := ConvertErr(errors.New("boom"))
		if got.ErrCode != ServiceErrCode || got.ErrMsg != "boom" {
			t.Errorf("unexpected conversion: %v", got)
		}
	})
}

func TestWithMessage(t *testing.T) {
	e := ParamErr.WithMessage("custom")
	if e.ErrCode != ParamErrCode || e.ErrMsg != "custom" {
		t.Errorf("unexpected errno: %v", e)
	}
	if ParamErr.ErrMsg == "custom" {
		t.Error("WithMessage mutated the shared value")
	}
}
