package install

import (
	"os"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/constants"
)

var osLookupEnv = os.LookupEnv

func contextFromLookup(lookup func(string) (string, bool)) Context {
	isSet := func(name string) bool {
		_, ok := lookup(name)
		return ok
	}
	return Context{
		FactoryInstall:  isSet(constants.FactoryInstallVariable),
		RecoveryInstall: isSet(constants.RecoveryInstallVariable),
		Install:         isSet(constants.InstallVariable),
	}
}

func (c Context) string() string {
	var kinds []string
	if c.FactoryInstall {
		kinds = append(kinds, "factory")
	}
	if c.RecoveryInstall {
		kinds = append(kinds, "recovery")
	}
	if c.Install {
		kinds = append(kinds, "install")
	}
	if len(kinds) < 1 {
		return "update"
	}
	return strings.Join(kinds, "+")
}
