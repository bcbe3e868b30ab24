package main

import "github.com/nickwells/param.mod/v6/param"

// addRefs will add the references to the standard help message
func addRefs(ps *param.PSet) error {
	ps.AddReference("timeconv",
		"A program to convert times between timezones and formats."+
			" It offers a much wider range of timezones than this"+
			" program but takes the time as a formatted string"+
			" rather than as a Unix timestamp."+
			"\n\n"+
			"To get this program:"+
			"\n\n"+
			"go install github.com/nickwells/utilities/timeconv@latest")

	return nil
}
