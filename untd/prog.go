package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/nickwells/col.mod/v6/col"
	"github.com/nickwells/col.mod/v6/colfmt"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/untd/internal/datefmt"
	"github.com/nickwells/untd/internal/timeadjust"
	"github.com/nickwells/verbose.mod/verbose"
)

const (
	zoneNameUTC = "UTC"
	zoneNameJST = "JST"

	dfltZoneName = zoneNameJST
)

// jst is Japan Standard Time. Japan does not observe daylight saving so a
// fixed offset is exact.
var jst = time.FixedZone(zoneNameJST, 9*tempus.SecondsPerHour)

// clipWrite writes to the system clipboard. It is indirected through a
// variable so that tests can intercept it.
var clipWrite = clipboard.WriteAll

// prog holds program parameters and status
type prog struct {
	timestampStr string

	zoneName  string
	adjustStr string
	format    string

	copyToClipboard bool

	listFormats   bool
	listTimezones bool

	twc      *twrap.TWConf
	dbgStack *verbose.Stack
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		zoneName:        dfltZoneName,
		copyToClipboard: true,

		twc:      twrap.NewTWConfOrPanic(),
		dbgStack: &verbose.Stack{},
	}
}

// run converts the timestamp and reports the result. It returns the exit
// status for the program. The args are any arguments left after the named
// parameters; they can hold the timestamp to be converted.
func (prog *prog) run(args []string) int {
	defer prog.dbgStack.Start("run", "converting the timestamp")()

	t, ok := prog.getTime(args)
	if !ok {
		return 1
	}

	loc, ok := prog.timezone()
	if !ok {
		return 1
	}

	t = t.In(loc)

	if prog.adjustStr != "" {
		adj, err := timeadjust.Parse(prog.adjustStr)
		if err != nil {
			fmt.Println("Invalid adjustment:", err)
			return 1
		}

		t = adj.Apply(t)
	}

	if prog.listTimezones {
		prog.showTimezones()
		return 0
	}

	if prog.listFormats {
		prog.showFormats(t)
		return 0
	}

	out := datefmt.Resolve(prog.format).Render(t)
	fmt.Println(out)

	if prog.copyToClipboard {
		prog.copyResult(out)
	}

	return 0
}

// getTime returns the time to be converted. This is the current time
// unless a timestamp giving seconds since the start of the Unix epoch has
// been supplied, either through the timestamp parameter or as a trailing
// argument. The second return value is false if the timestamp is not
// usable; a message will have been printed.
func (prog *prog) getTime(args []string) (time.Time, bool) {
	defer prog.dbgStack.Start("getTime", "resolving the instant")()

	if len(args) == 0 && prog.timestampStr == "" {
		return time.Now(), true
	}

	tsStr := prog.timestampStr
	if len(args) > 0 {
		tsStr = args[0]
	}

	secs, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		fmt.Println("Invalid timestamp")
		return time.Time{}, false
	}

	return time.Unix(secs, 0), true
}

// timezone returns the location in which to present the converted time.
// The second return value is false if the timezone name is not in the
// supported set; a message will have been printed.
func (prog *prog) timezone() (*time.Location, bool) {
	switch prog.zoneName {
	case zoneNameUTC:
		return time.UTC, true
	case zoneNameJST:
		return jst, true
	}

	fmt.Println("Invalid timezone")

	return nil, false
}

// copyResult copies the converted time to the system clipboard. Failure is
// reported as a warning and does not change the exit status; the result
// has already been printed.
func (prog *prog) copyResult(s string) {
	defer prog.dbgStack.Start("copyResult", "copying to the clipboard")()

	if err := clipWrite(s); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to copy to clipboard:", err)
		return
	}

	fmt.Println("Copied to clipboard!")
}

// showFormats reports the format keywords, each with its pattern and the
// converted time as that keyword would present it
func (prog prog) showFormats(t time.Time) {
	h, err := col.NewHeader()
	if err != nil {
		log.Fatal("couldn't create the report header: ", err)
	}

	rpt, err := col.NewReport(h, os.Stdout,
		col.New(&colfmt.String{W: 7}, "Keyword"),
		col.New(&colfmt.String{W: 28}, "Pattern"),
		col.New(&colfmt.String{W: 7}, "Example"))
	if err != nil {
		log.Fatal("couldn't create the report: ", err)
	}

	for _, kw := range datefmt.Keywords() {
		f := datefmt.Resolve(kw)

		err = rpt.PrintRow(kw, f.Pattern(), f.Render(t))
		if err != nil {
			log.Fatal("couldn't print the report row: ", err)
		}
	}

	fmt.Println()
	prog.twc.Wrap("Any other value given for the format is used"+
		" as a pattern; the example column shows the time that"+
		" would be converted.", 0)
}

// showTimezones reports the supported timezone names and their offsets
func (prog prog) showTimezones() {
	h, err := col.NewHeader()
	if err != nil {
		log.Fatal("couldn't create the report header: ", err)
	}

	rpt, err := col.NewReport(h, os.Stdout,
		col.New(&colfmt.String{W: 4}, "Name"),
		col.New(&colfmt.String{W: 6}, "UTC offset"))
	if err != nil {
		log.Fatal("couldn't create the report: ", err)
	}

	for _, z := range []struct{ name, offset string }{
		{zoneNameUTC, "+00:00"},
		{zoneNameJST, "+09:00"},
	} {
		err = rpt.PrintRow(z.name, z.offset)
		if err != nil {
			log.Fatal("couldn't print the report row: ", err)
		}
	}
}
