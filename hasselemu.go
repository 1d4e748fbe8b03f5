// This file is part of Hasselemu.
//
// Hasselemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hasselemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hasselemu.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/gui/sdlwindow"
	"github.com/hasseldorf/hasselemu/gui/termwindow"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/limiter"
	"github.com/hasseldorf/hasselemu/logger"
	"github.com/hasseldorf/hasselemu/modalflag"
	"github.com/hasseldorf/hasselemu/paths"
	"github.com/hasseldorf/hasselemu/performance"
	"github.com/hasseldorf/hasselemu/playmode"
	"github.com/hasseldorf/hasselemu/prefs"
	"github.com/hasseldorf/hasselemu/romloader"
	"github.com/hasseldorf/hasselemu/statsview"
	"github.com/hasseldorf/hasselemu/version"
)

// exit values
const (
	exitCommandLine = 10
	exitRuntime     = 20
)

// commandLineError is used for problems with the arguments given to a mode
const commandLineError = "command line: %v"

// the mode that prints version information
const versionMode = "VERSION"

// display surfaces selectable with the -display flag
const (
	displaySDL  = "SDL"
	displayTerm = "TERM"
)

// SDL requires that window and event handling happen on the main thread.
// everything in the program runs on the main thread so locking it here is
// sufficient.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the emulator with the arguments. the return value is the exit value
// for the process.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes(emulation.ModeInteractive.String(), emulation.ModeBenchmark.String(), versionMode)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitCommandLine
	}

	if md.Mode() == versionMode {
		fmt.Fprintln(output, version.String())
		return 0
	}

	mode, err := emulation.ParseMode(md.Mode())
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitCommandLine
	}

	switch mode {
	case emulation.ModeInteractive:
		err = run(md, output)
	case emulation.ModeBenchmark:
		err = bench(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if curated.Is(err, commandLineError) {
			return exitCommandLine
		}
		return exitRuntime
	}

	return 0
}

// surface is implemented by the display surfaces in the gui directory
type surface interface {
	emulation.Surface
	Destroy()
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	display := md.AddChoice("display", displaySDL, []string{displaySDL, displayTerm}, "display surface")
	scale := md.AddFloat64("scale", defaultScale, "window scaling (SDL only)")
	pacing := md.AddChoice("pacing", limiter.Spin.String(), []string{limiter.Spin.String(), limiter.Hybrid.String()}, "cycle pacing strategy")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	benchmark := md.AddBool("bench", false, "run the benchmark instead of playing")
	prefsStack := md.AddString("prefs", "", "preferences for this run only (key::value; ...)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(commandLineError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	setLogEcho(*log, output)

	ld, err := romArgument(md)
	if err != nil {
		return err
	}

	pr, err := loadPreferences(*prefsStack)
	if err != nil {
		return err
	}

	// flags that have been set on the command line take the place of the
	// saved preferences
	var visitErr error
	md.Visit(func(flg string) {
		switch flg {
		case "scale":
			visitErr = pr.scale.Set(*scale)
		case "pacing":
			visitErr = pr.pacing.Set(*pacing)
		}
	})
	if visitErr != nil {
		return visitErr
	}

	strategy, err := limiter.ParseStrategy(pr.pacing.String())
	if err != nil {
		return err
	}

	rom, err := ld.Load()
	if err != nil {
		return err
	}
	sys := hassel.NewSystem(rom)

	if *benchmark {
		return runBenchmark(output, sys, pr, pr.benchDuration.Value(), performance.ProfileNone, ld)
	}

	var scr surface
	switch *display {
	case displaySDL:
		scr, err = sdlwindow.NewWindow(float32(pr.scale.Value()))
	case displayTerm:
		scr, err = termwindow.NewTerminal(os.Stdin, os.Stdout)
	}
	if err != nil {
		return err
	}
	defer scr.Destroy()

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	cfg := playmode.Config{
		ClockHz:       int64(pr.clockHz.Value()),
		FrameInterval: pr.frameInterval.Value(),
		Pacing:        strategy,
	}

	err = playmode.Play(cfg, sys.Engine, scr, sys.IO, sys.Graphics)
	if err != nil {
		return err
	}

	return pr.save()
}

func bench(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddDuration("duration", hassel.BenchDuration, "amount of emulated time to benchmark")
	profile := md.AddString("profile", performance.ProfileNone.String(), "run benchmark through profiler: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsStack := md.AddString("prefs", "", "preferences for this run only (key::value; ...)")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(commandLineError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	setLogEcho(*log, output)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(commandLineError, err)
	}

	ld, err := romArgument(md)
	if err != nil {
		return err
	}

	pr, err := loadPreferences(*prefsStack)
	if err != nil {
		return err
	}

	nominal := pr.benchDuration.Value()
	md.Visit(func(flg string) {
		if flg == "duration" {
			nominal = *duration
		}
	})

	rom, err := ld.Load()
	if err != nil {
		return err
	}

	return runBenchmark(output, hassel.NewSystem(rom), pr, nominal, prf, ld)
}

func runBenchmark(output io.Writer, sys *hassel.System, pr *preferences, nominal time.Duration, prf performance.Profile, ld romloader.Loader) error {
	cfg := performance.Config{
		ClockHz:       int64(pr.clockHz.Value()),
		Nominal:       nominal,
		ProfileHeader: paths.UniqueFilename("performance", ld.ShortName()),
	}
	return performance.Check(output, sys.Engine, cfg, prf)
}

// romArgument checks that there is exactly one remaining argument and
// returns a loader for it.
func romArgument(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, curated.Errorf(commandLineError, "ROM file required")
	case 1:
		return romloader.NewLoader(md.GetArg(0)), nil
	}
	return romloader.Loader{}, curated.Errorf(commandLineError, "too many arguments")
}

// loadPreferences from the resource directory. the stack argument is pushed
// onto the prefs command line stack for the duration of the load.
func loadPreferences(stack string) (*preferences, error) {
	if stack != "" {
		prefs.PushCommandLineStack(stack)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "hasselemu", "unused preferences: %s", unused)
			}
		}()
	}
	return newPreferences(paths.ResourcePath(prefsFile))
}

func setLogEcho(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output, true)
	} else {
		logger.SetEcho(nil, false)
	}
}
