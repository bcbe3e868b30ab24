package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		verbose.AddTimingParams(prog.dbgStack),

		versionparams.AddParams,

		addParams(prog),

		addNotes,
		addExamples,
		addRefs,
		SetGlobalConfigFile,
		SetConfigFile,

		param.SetProgramDescription(
			"This converts a Unix timestamp into a date and time."+
				" The timestamp can be given as a trailing argument"+
				" or through a parameter; if it is not given at all"+
				" the current time is used. The time is presented"+
				" in the chosen timezone ("+dfltZoneName+" by"+
				" default) and format and it can be shifted by some"+
				" relative amount before being presented."+
				"\n\n"+
				"The result is printed and, unless you choose"+
				" otherwise, copied to the system clipboard."),
	)
}
