package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeIsComparableError(t *testing.T) {
	var err error = InvalidParams
	if err.Error() != "invalid_params" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, InvalidParams) {
		t.Error("errors.Is failed on an identical code")
	}
	if errors.Is(err, Unsupported) {
		t.Error("errors.Is matched a different code")
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Error("nil should map to OK")
	}
	if Of(Timeout) != Timeout {
		t.Error("bare code not extracted")
	}
	if Of(errors.New("boom")) != Error {
		t.Error("foreign error should map to the generic code")
	}
	e := &E{C: DeviceError, Op: "init", Err: fmt.Errorf("bus fault")}
	if Of(e) != DeviceError {
		t.Error("wrapper code not extracted")
	}
	if !errors.Is(fmt.Errorf("op: %w", e), e.Err) {
		t.Error("wrapped cause lost")
	}
}

func TestEMessage(t *testing.T) {
	e := &E{C: Timeout, Msg: "no response"}
	if e.Error() != "timeout: no response" {
		t.Errorf("Error() = %q", e.Error())
	}
	if (&E{C: Timeout}).Error() != "timeout" {
		t.Error("bare wrapper should render just the code")
	}
}
