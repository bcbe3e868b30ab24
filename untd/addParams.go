package main

import (
	"fmt"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/nickwells/untd/internal/datefmt"
	"github.com/nickwells/untd/internal/timeadjust"
)

const (
	paramNameTimestamp     = "timestamp"
	paramNameTimezone      = "timezone"
	paramNameAdjust        = "adjust"
	paramNameFormat        = "format"
	paramNameCopy          = "copy"
	paramNameNoCopy        = "no-copy"
	paramNameListFormats   = "list-formats"
	paramNameListTimezones = "list-timezones"

	groupNameSetting    = param.DfltGroupName + "-setting"
	groupNameFormatting = param.DfltGroupName + "-formatting"
)

// setFormat returns an action func that will set the format to the given
// keyword
func setFormat(prog *prog, keyword string) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		prog.format = keyword
		return nil
	}
}

// addParams adds the parameters for this program
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		// add the setting parameter group
		ps.AddGroup(groupNameSetting, "instant-setting parameters\n\n"+
			"These allow you to choose the instant to be converted, the"+
			" timezone in which to present it and any adjustment to be"+
			" applied. The default is to use the current time")

		tsParam := ps.Add(paramNameTimestamp,
			psetter.String[string]{
				Value: &prog.timestampStr,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the Unix timestamp to be converted. This is the number of"+
				" seconds since 00:00:00 UTC on the 1st of January 1970;"+
				" it may be negative for times before then."+
				"\n\n"+
				"The timestamp may also be given as a trailing argument,"+
				" following the terminal parameter"+
				" ('"+ps.TerminalParam()+"')."+
				" If it is not given at all the current time is used.",
			param.AltNames("ts", "t"),
			param.GroupName(groupNameSetting))

		zoneParam := ps.Add(paramNameTimezone,
			psetter.String[string]{Value: &prog.zoneName},
			"the timezone in which to present the converted time."+
				" It must be either '"+zoneNameUTC+"'"+
				" or '"+zoneNameJST+"' (Japan Standard Time).",
			param.AltNames("tz", "z"),
			param.GroupName(groupNameSetting))

		ps.Add(paramNameAdjust,
			psetter.String[string]{
				Value: &prog.adjustStr,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"shift the instant by this relative amount before it is"+
				" presented. The adjustment is a whole number with a"+
				" unit suffix and an optional leading sign; the unit"+
				" must be "+timeadjust.UnitList()+
				" meaning seconds, minutes, hours, days or weeks."+
				"\n\n"+
				"For instance '-30s' shifts the time 30 seconds into"+
				" the past and '2d' shifts it two days into the future.",
			param.AltNames("adj", "a"),
			param.GroupName(groupNameSetting))

		ps.Add(paramNameListTimezones,
			psetter.Bool{Value: &prog.listTimezones},
			"list the supported timezones and exit",
			param.AltNames("list-tz"),
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
			param.GroupName(groupNameSetting))

		err := param.SeeAlso(paramNameListTimezones)(zoneParam)
		if err != nil {
			return err
		}

		// add the formatting parameter group

		var fmtCounter paction.Counter

		fmtCounterAF := (&fmtCounter).MakeActionFunc()

		ps.AddGroup(groupNameFormatting, "formatting parameters\n\n"+
			"These control how the converted time is presented. You can"+
			" either give the format directly or use one of the"+
			" keyword parameters")

		formatParam := ps.Add(paramNameFormat,
			psetter.String[string]{Value: &prog.format},
			"the format in which to present the converted time. This is"+
				" either one of the format keywords or else a pattern"+
				" using the strftime conversion specifications"+
				" ('%Y', '%m', '%d' and so on). Anything which is not a"+
				" keyword is used as a pattern; unrecognised conversions"+
				" appear as given."+
				"\n\n"+
				"The default presents just the date:"+
				" '"+datefmt.DfltPattern+"'.",
			param.AltNames("fmt", "f"),
			param.GroupName(groupNameFormatting),
			param.SeeNote(noteFormatKeywords),
			param.PostAction(fmtCounterAF),
		)

		ps.Add("format-iso", psetter.Nil{},
			"present the converted time as an ISO-8601 date and time:"+
				"\n\n"+
				datefmt.Resolve("iso").Pattern(),
			param.AltNames("fmt-iso", "iso"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, "iso")),
		)

		ps.Add("format-jp", psetter.Nil{},
			"present the converted time as a Japanese date:"+
				"\n\n"+
				datefmt.Resolve("jp").Pattern(),
			param.AltNames("fmt-jp", "jp"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, "jp")),
		)

		ps.Add("format-jp-weekday", psetter.Nil{},
			"present the converted time as a Japanese date with the"+
				" weekday name appended",
			param.AltNames("fmt-jpwd", "jpwd"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, "jpwd")),
			param.SeeNote(noteWeekdayNames),
		)

		ps.Add("format-jp-hm", psetter.Nil{},
			"present the converted time as a Japanese date with the hour"+
				" and minute:"+
				"\n\n"+
				datefmt.Resolve("jphm").Pattern(),
			param.AltNames("fmt-jphm", "jphm"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, "jphm")),
		)

		ps.Add("format-jp-hms", psetter.Nil{},
			"present the converted time as a Japanese date with the hour,"+
				" minute and second:"+
				"\n\n"+
				datefmt.Resolve("jphms").Pattern(),
			param.AltNames("fmt-jphms", "jphms"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, "jphms")),
		)

		ps.Add(paramNameListFormats,
			psetter.Bool{Value: &prog.listFormats},
			"list the format keywords, each with its pattern and an"+
				" example of the converted time as that keyword would"+
				" present it, and exit",
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
			param.GroupName(groupNameFormatting))

		err = param.SeeAlso(paramNameListFormats)(formatParam)
		if err != nil {
			return err
		}

		// add the clipboard parameters to the default group

		ps.Add(paramNameCopy,
			psetter.Bool{Value: &prog.copyToClipboard},
			"copy the converted time to the system clipboard."+
				" This is on by default.",
			param.AltNames("c"))

		ps.Add(paramNameNoCopy,
			psetter.Bool{Value: &prog.copyToClipboard, Invert: true},
			"don't copy the converted time to the system clipboard",
			param.AltNames("dont-copy"),
			param.SeeAlso(paramNameCopy))

		// allow a trailing timestamp argument
		err = ps.SetNamedRemHandler(param.NullRemHandler{}, "timestamp")
		if err != nil {
			return err
		}

		ps.AddFinalCheck(func() error {
			if fmtCounter.Count() > 1 {
				return fmt.Errorf(
					"the format has been set multiple times: %s",
					fmtCounter.SetBy())
			}

			return nil
		})

		ps.AddFinalCheck(func() error {
			if len(ps.Remainder()) > 1 {
				return fmt.Errorf(
					"at most one trailing timestamp can be given,"+
						" there were %d trailing arguments",
					len(ps.Remainder()))
			}

			if tsParam.HasBeenSet() && len(ps.Remainder()) > 0 {
				return fmt.Errorf(
					"the timestamp has been given both with the %q"+
						" parameter and as a trailing argument",
					tsParam.Name())
			}

			return nil
		})

		return nil
	}
}
