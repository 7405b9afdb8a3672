package parameters

import (
	"testing"

	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegisterDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.core")
	defer teardown()
	//
	regs := NewTypesettingRegisters()
	if regs.R(P_ACCENTSIZE) != dimen.One {
		t.Errorf("expected default accent size to be 100%%, is %v", regs.R(P_ACCENTSIZE))
	}
	if !regs.B(P_DOTLESS) {
		t.Errorf("expected dotless to default to true")
	}
	if regs.S(P_MATHCLASSES) != "unicode" {
		t.Errorf("expected unicode classifier as default, is %q", regs.S(P_MATHCLASSES))
	}
}

func TestRegisterGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.core")
	defer teardown()
	//
	regs := NewTypesettingRegisters()
	regs.Begingroup()
	regs.Push(P_DOTLESS, false)
	regs.Begingroup()
	regs.Push(P_ACCENTSIZE, dimen.Ratio(150))
	if regs.B(P_DOTLESS) {
		t.Errorf("expected inner group to see dotless=false from outer group")
	}
	if regs.R(P_ACCENTSIZE) != dimen.Ratio(150) {
		t.Errorf("expected inner group size 150%%, is %v", regs.R(P_ACCENTSIZE))
	}
	regs.Endgroup()
	if regs.R(P_ACCENTSIZE) != dimen.One {
		t.Errorf("expected size to be restored after group, is %v", regs.R(P_ACCENTSIZE))
	}
	regs.Endgroup()
	if !regs.B(P_DOTLESS) {
		t.Errorf("expected dotless to be restored after group")
	}
	regs.Endgroup() // unbalanced, must not panic
}

func TestRegisterKeyRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.core")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected access to P_STOPPER to panic")
		}
	}()
	NewTypesettingRegisters().Get(P_STOPPER)
}
