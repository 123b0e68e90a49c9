package options

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
)

type fakeSection struct {
	errs []error
}

func (f *fakeSection) AddFlags(*pflag.FlagSet) {}

func (f *fakeSection) Validate() []error { return f.errs }

func TestValidateAll(t *testing.T) {
	a := &fakeSection{}
	b := &fakeSection{errs: []error{errors.New("b1"), errors.New("b2")}}
	c := &fakeSection{errs: []error{errors.New("c1")}}

	errs := ValidateAll(a, b, c)
	if len(errs) != 3 {
		t.Fatalf("ValidateAll() returned %d errors, want 3", len(errs))
	}
	if errs[2].Error() != "c1" {
		t.Errorf("errs[2] = %v, want c1", errs[2])
	}
	if got := ValidateAll(a); len(got) != 0 {
		t.Errorf("ValidateAll() on valid section = %v", got)
	}
}
