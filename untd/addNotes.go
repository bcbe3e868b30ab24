package main

import (
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/untd/internal/datefmt"
)

const (
	noteFormatKeywords = "Untd - format keywords"
	noteWeekdayNames   = "Untd - weekday names"
)

// addNotes will add any notes to the param PSet
func addNotes(ps *param.PSet) error {
	ps.AddNote(noteFormatKeywords,
		"The format can be given as one of a fixed set of keywords"+
			" rather than as a pattern. The keywords are"+
			" '"+english.Join(datefmt.Keywords(), "', '", "' or '")+"'."+
			" Each stands for a commonly wanted presentation of the"+
			" time; the '"+paramNameListFormats+"' parameter shows the"+
			" pattern behind each keyword and an example of the"+
			" result."+
			"\n\n"+
			"Any format value which is not a keyword is used as a"+
			" strftime pattern just as it is given.",
		param.NoteSeeParam(paramNameFormat, paramNameListFormats))

	ps.AddNote(noteWeekdayNames,
		"The 'jpwd' format appends the Japanese name of the weekday"+
			" to the date. The names run from '日' for Sunday"+
			" through '月', '火', '水', '木' and '金' to '土' for"+
			" Saturday.",
		param.NoteSeeParam(paramNameFormat))

	return nil
}
