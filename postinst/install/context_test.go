package install

import (
	"testing"
)

func TestContextFromLookup(t *testing.T) {
	var tests = []struct {
		env      map[string]string
		isUpdate bool
		name     string
	}{
		{nil, true, "update"},
		{map[string]string{"IS_FACTORY_INSTALL": ""}, false, "factory"},
		{map[string]string{"IS_RECOVERY_INSTALL": "1"}, false, "recovery"},
		{map[string]string{"IS_INSTALL": "0"}, false, "install"},
		{map[string]string{"IS_FACTORY_INSTALL": "1", "IS_INSTALL": "1"},
			false, "factory+install"},
		{map[string]string{"IS_UPDATE": "1"}, true, "update"},
	}
	for _, test := range tests {
		ctx := ContextFromLookup(func(name string) (string, bool) {
			value, ok := test.env[name]
			return value, ok
		})
		if ctx.IsUpdate() != test.isUpdate {
			t.Errorf("%v: IsUpdate() = %v", test.env, ctx.IsUpdate())
		}
		if ctx.String() != test.name {
			t.Errorf("%v: String() = %s", test.env, ctx)
		}
	}
}

func TestContextFromEnvironment(t *testing.T) {
	t.Setenv("IS_RECOVERY_INSTALL", "")
	if ctx := ContextFromEnvironment(); ctx.IsUpdate() ||
		!ctx.RecoveryInstall {
		t.Errorf("context: %+v", ctx)
	}
}
