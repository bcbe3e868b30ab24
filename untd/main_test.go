package main

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nickwells/mathutil.mod/v2/mathutil"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/untd/internal/datefmt"
)

func TestRun(t *testing.T) {
	savedClipWrite := clipWrite
	defer func() { clipWrite = savedClipWrite }()

	testCases := []struct {
		testhelper.ID
		setProg       func(prog *prog)
		args          []string
		clipFails     bool
		expExitStatus int
		expStdout     string
		expStderr     string
		expClip       string
	}{
		{
			ID:        testhelper.MkID("good: the epoch, UTC"),
			setProg:   func(prog *prog) { prog.zoneName = zoneNameUTC },
			args:      []string{"0"},
			expStdout: "1970-01-01\n",
		},
		{
			ID: testhelper.MkID("good: the epoch, UTC, iso"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.format = "iso"
			},
			args:      []string{"0"},
			expStdout: "1970-01-01T00:00:00+0000\n",
		},
		{
			ID:        testhelper.MkID("good: the epoch, default timezone, iso"),
			setProg:   func(prog *prog) { prog.format = "iso" },
			args:      []string{"0"},
			expStdout: "1970-01-01T09:00:00+0900\n",
		},
		{
			ID: testhelper.MkID("good: the epoch, UTC, a day later"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.adjustStr = "1d"
			},
			args:      []string{"0"},
			expStdout: "1970-01-02\n",
		},
		{
			ID: testhelper.MkID("good: the epoch, UTC, iso, 30s earlier"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.format = "iso"
				prog.adjustStr = "-30s"
			},
			args:      []string{"0"},
			expStdout: "1969-12-31T23:59:30+0000\n",
		},
		{
			ID:        testhelper.MkID("good: a Saturday, jpwd"),
			setProg:   func(prog *prog) { prog.format = "jpwd" },
			args:      []string{"1735948800"},
			expStdout: "2025年01月04日土\n",
		},
		{
			ID: testhelper.MkID("good: timestamp through the parameter"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.timestampStr = "0"
			},
			expStdout: "1970-01-01\n",
		},
		{
			ID: testhelper.MkID("good: the trailing argument wins"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.timestampStr = "86400"
			},
			args:      []string{"0"},
			expStdout: "1970-01-01\n",
		},
		{
			ID:        testhelper.MkID("good: a negative timestamp"),
			setProg:   func(prog *prog) { prog.zoneName = zoneNameUTC },
			args:      []string{"-86400"},
			expStdout: "1969-12-31\n",
		},
		{
			ID: testhelper.MkID("good: the format keyword 'default'"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.format = "default"
			},
			args:      []string{"0"},
			expStdout: "1970-01-01\n",
		},
		{
			ID: testhelper.MkID("good: a custom pattern"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.format = "%H:%M:%S"
			},
			args:      []string{"0"},
			expStdout: "00:00:00\n",
		},
		{
			ID: testhelper.MkID("good: copied to the clipboard"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.copyToClipboard = true
			},
			args:      []string{"0"},
			expStdout: "1970-01-01\nCopied to clipboard!\n",
			expClip:   "1970-01-01",
		},
		{
			ID: testhelper.MkID("good: the clipboard write fails"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.copyToClipboard = true
			},
			args:      []string{"0"},
			clipFails: true,
			expStdout: "1970-01-01\n",
			expStderr: "Failed to copy to clipboard:" +
				" no clipboard utilities available\n",
		},
		{
			ID:            testhelper.MkID("bad: timestamp"),
			args:          []string{"abc"},
			expExitStatus: 1,
			expStdout:     "Invalid timestamp\n",
		},
		{
			ID:            testhelper.MkID("bad: timestamp, fractional"),
			args:          []string{"1.5"},
			expExitStatus: 1,
			expStdout:     "Invalid timestamp\n",
		},
		{
			ID:            testhelper.MkID("bad: timestamp, empty trailing arg"),
			args:          []string{""},
			expExitStatus: 1,
			expStdout:     "Invalid timestamp\n",
		},
		{
			ID:            testhelper.MkID("bad: timezone"),
			setProg:       func(prog *prog) { prog.zoneName = "PST" },
			args:          []string{"0"},
			expExitStatus: 1,
			expStdout:     "Invalid timezone\n",
		},
		{
			ID: testhelper.MkID("bad: adjustment, unknown unit"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.adjustStr = "10x"
			},
			args:          []string{"0"},
			expExitStatus: 1,
			expStdout: "Invalid adjustment:" +
				` unknown time unit: "x" (the unit must be s, m, h, d or w)` +
				"\n",
		},
		{
			ID: testhelper.MkID("bad: adjustment, no number"),
			setProg: func(prog *prog) {
				prog.zoneName = zoneNameUTC
				prog.adjustStr = "s"
			},
			args:          []string{"0"},
			expExitStatus: 1,
			expStdout:     "Invalid adjustment:" + ` missing numeric part: "s"` + "\n",
		},
	}

	for _, tc := range testCases {
		prog := newProg()
		prog.copyToClipboard = false

		if tc.setProg != nil {
			tc.setProg(prog)
		}

		var gotClip string

		clipWrite = func(s string) error {
			if tc.clipFails {
				return errors.New("no clipboard utilities available")
			}

			gotClip = s

			return nil
		}

		fakeIO, err := testhelper.NewStdioFromString("")
		if err != nil {
			t.Log(tc.IDStr())
			t.Fatal("\t: couldn't create the FakeIO: ", err)
		}

		exitStatus := prog.run(tc.args)

		stdout, stderr, err := fakeIO.Done()
		if err != nil {
			t.Log(tc.IDStr())
			t.Fatal("\t: couldn't get the FakeIO results: ", err)
		}

		testhelper.DiffInt(t, tc.IDStr(), "exit status",
			exitStatus, tc.expExitStatus)
		testhelper.DiffString(t, tc.IDStr(), "stdout",
			string(stdout), tc.expStdout)
		testhelper.DiffString(t, tc.IDStr(), "stderr",
			string(stderr), tc.expStderr)
		testhelper.DiffString(t, tc.IDStr(), "clipboard",
			gotClip, tc.expClip)
	}
}

func TestRunListings(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		setProg  func(prog *prog)
		expShown []string
	}{
		{
			ID:      testhelper.MkID("list the formats"),
			setProg: func(prog *prog) { prog.listFormats = true },
			expShown: []string{
				"Keyword", "Pattern", "Example",
				"iso", "jpwd",
				datefmt.DfltPattern, "1970-01-01",
			},
		},
		{
			ID:      testhelper.MkID("list the timezones"),
			setProg: func(prog *prog) { prog.listTimezones = true },
			expShown: []string{
				"Name", "UTC offset",
				zoneNameUTC, zoneNameJST,
				"+00:00", "+09:00",
			},
		},
	}

	for _, tc := range testCases {
		prog := newProg()
		prog.copyToClipboard = false
		prog.zoneName = zoneNameUTC
		tc.setProg(prog)

		fakeIO, err := testhelper.NewStdioFromString("")
		if err != nil {
			t.Log(tc.IDStr())
			t.Fatal("\t: couldn't create the FakeIO: ", err)
		}

		if err := twrap.SetWriter(os.Stdout)(prog.twc); err != nil {
			t.Log(tc.IDStr())
			t.Fatal("\t: couldn't set the twrap writer: ", err)
		}

		exitStatus := prog.run([]string{"0"})

		stdout, stderr, err := fakeIO.Done()
		if err != nil {
			t.Log(tc.IDStr())
			t.Fatal("\t: couldn't get the FakeIO results: ", err)
		}

		testhelper.DiffInt(t, tc.IDStr(), "exit status", exitStatus, 0)

		if len(stderr) != 0 {
			t.Log(tc.IDStr())
			t.Errorf("\t: unexpected output on stderr: %q", string(stderr))
		}

		for _, s := range tc.expShown {
			if !strings.Contains(string(stdout), s) {
				t.Log(tc.IDStr())
				t.Errorf("\t: the listing does not show %q", s)
			}
		}
	}
}

func TestGetTimeNow(t *testing.T) {
	prog := newProg()

	got, ok := prog.getTime(nil)
	if !ok {
		t.Fatal("getting the current time should not fail")
	}

	if !mathutil.AlmostEqual(
		float64(got.Unix()), float64(time.Now().Unix()), 5.0) {
		t.Errorf("the time returned (%s) is not close to the current time",
			got)
	}
}

func TestShowFormats(t *testing.T) {
	prog := newProg()

	fakeIO, err := testhelper.NewStdioFromString("")
	if err != nil {
		t.Fatal("couldn't create the FakeIO: ", err)
	}

	if err := twrap.SetWriter(os.Stdout)(prog.twc); err != nil {
		t.Fatal("couldn't set the twrap writer: ", err)
	}

	prog.showFormats(time.Unix(0, 0).In(time.UTC))

	stdout, stderr, err := fakeIO.Done()
	if err != nil {
		t.Fatal("couldn't get the FakeIO results: ", err)
	}

	if len(stderr) != 0 {
		t.Errorf("unexpected output on stderr: %q", string(stderr))
	}

	for _, kw := range datefmt.Keywords() {
		if !strings.Contains(string(stdout), kw) {
			t.Errorf("the list of formats does not mention %q", kw)
		}
	}

	for _, s := range []string{datefmt.DfltPattern, "1970-01-01", "1970年01月01日"} {
		if !strings.Contains(string(stdout), s) {
			t.Errorf("the list of formats does not show %q", s)
		}
	}
}

func TestShowTimezones(t *testing.T) {
	prog := newProg()

	fakeIO, err := testhelper.NewStdioFromString("")
	if err != nil {
		t.Fatal("couldn't create the FakeIO: ", err)
	}

	prog.showTimezones()

	stdout, stderr, err := fakeIO.Done()
	if err != nil {
		t.Fatal("couldn't get the FakeIO results: ", err)
	}

	if len(stderr) != 0 {
		t.Errorf("unexpected output on stderr: %q", string(stderr))
	}

	for _, s := range []string{zoneNameUTC, zoneNameJST, "+00:00", "+09:00"} {
		if !strings.Contains(string(stdout), s) {
			t.Errorf("the list of timezones does not show %q", s)
		}
	}
}
