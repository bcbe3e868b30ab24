package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples this will add examples to the usage message.
func addExamples(ps *param.PSet) error {
	ps.AddExample(`untd -- 1700000000`,
		"This will convert the timestamp 1700000000 into a date in"+
			" Japan Standard Time and copy it to the clipboard."+
			"\n\n"+
			"It will print '2023-11-15'.")
	ps.AddExample(`untd -format iso -timezone UTC -no-copy -- 1700000000`,
		"This will convert the timestamp into an ISO-8601 date and"+
			" time in UTC without copying the result to the clipboard."+
			"\n\n"+
			"It will print '2023-11-14T22:13:20+0000'.")
	ps.AddExample(`untd -jpwd -- 1700000000`,
		"This will convert the timestamp into a Japanese date with"+
			" the weekday name appended."+
			"\n\n"+
			"It will print '2023年11月15日水'.")
	ps.AddExample(`untd -adjust=-30s -- 1700000000`,
		"This will shift the timestamp 30 seconds into the past"+
			" before converting it.")
	ps.AddExample(`untd -format %H:%M:%S -timezone UTC`,
		"This will print the current time of day in UTC; any format"+
			" value which is not one of the keywords is used as a"+
			" strftime pattern.")

	return nil
}
