// This file is part of screenpicture.
//
// screenpicture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// screenpicture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with screenpicture.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/gui/sdlscreen"
	"github.com/tokineco/screenpicture/gui/termscreen"
	"github.com/tokineco/screenpicture/logger"
	"github.com/tokineco/screenpicture/modalflag"
	"github.com/tokineco/screenpicture/overlay"
	"github.com/tokineco/screenpicture/overlay/command"
	"github.com/tokineco/screenpicture/paths"
	"github.com/tokineco/screenpicture/prefs"
	"github.com/tokineco/screenpicture/savestate"
	"github.com/tokineco/screenpicture/script"
	"github.com/tokineco/screenpicture/statsview"
	"github.com/tokineco/screenpicture/tint"
	"github.com/tokineco/screenpicture/version"
)

// SDL requires that window and event handling happens on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	showVersion := md.AddBool("version", false, "print version and exit")
	md.AddSubModes("RUN", "TERM", "HEADLESS")
	md.AdditionalHelp(`RUN shows the overlays in a window. TERM shows a preview in the terminal.
HEADLESS runs the script without a display and prints the final state.`)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// interrupt ends the program without saving
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Print("\r")
		os.Exit(0)
	}()

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "TERM":
		err = term(md)
	case "HEADLESS":
		err = headless(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// flags common to all modes.
type flags struct {
	script    *string
	state     *string
	save      *string
	db        *string
	frames    *int
	log       *bool
	prefs     *string
	statsview *bool
}

func addFlags(md *modalflag.Modes) flags {
	return flags{
		script:    md.AddString("script", "", "script of plugin commands to run"),
		state:     md.AddString("state", "", "restore the named save state before starting"),
		save:      md.AddString("save", "", "save the overlay state with the name on exit (AUTO for a unique name)"),
		db:        md.AddString("db", savestate.DefaultPath(), "save state database"),
		frames:    md.AddInt("frames", 0, "number of frames to run for (0 to run until the script ends)"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		prefs:     md.AddString("prefs", "", "preferences to use for this session (key::value; key::value)"),
		statsview: md.AddBool("statsview", false, "run the statsview server"),
	}
}

// session connects the overlay slots to the display.
type session struct {
	dispPrefs *display.Preferences
	ovlPrefs  *overlay.Preferences

	tints  *tint.Cache
	pcs    *display.Pictures
	srcs   *display.Sources
	reg    *overlay.Registry
	interp *command.Interpreter
	vars   *script.Variables
	runner *script.Runner
	store  *savestate.Store

	save   string
	frames int
}

// newSession prepares a session from the flags. The loader is used for
// named assets. If loader is nil then assets are loaded from the assets
// directory in the display preferences.
func newSession(f flags, output io.Writer, loader func(dir string) display.AssetLoader) (*session, error) {
	if *f.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *f.statsview {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! statsview not available in this build")
		}
	}

	prefs.PushCommandLineStack(*f.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}()

	s := &session{
		frames: *f.frames,
		save:   *f.save,
	}

	var err error

	s.dispPrefs, err = display.NewPreferences()
	if err != nil {
		return nil, err
	}
	s.ovlPrefs, err = overlay.NewPreferences()
	if err != nil {
		return nil, err
	}

	s.tints = tint.NewCache(tint.ToneGenerator{}, s.dispPrefs.Viewport)
	s.pcs = display.NewPictures()

	dir := s.dispPrefs.Assets.Get().(string)
	if loader == nil {
		s.srcs = display.NewSources(display.DirLoader{Dir: dir}, s.tints)
	} else {
		s.srcs = display.NewSources(loader(dir), s.tints)
	}

	screenID, fadeID := s.ovlPrefs.PictureIDs()
	s.reg, err = overlay.NewRegistry(screenID, fadeID, s.pcs)
	if err != nil {
		return nil, err
	}

	s.vars = script.NewVariables()
	s.interp = command.NewInterpreter(s.reg, s.vars.Resolve)

	if *f.script != "" {
		s.runner, err = script.NewRunner(*f.script, s.vars)
		if err != nil {
			return nil, err
		}
		s.runner.AddPlugin(command.CommandName, s.interp)
	}

	if *f.state != "" || s.save != "" {
		s.store, err = savestate.Open(*f.db)
		if err != nil {
			return nil, err
		}
	}

	if *f.state != "" {
		slots, err := s.store.Load(*f.state)
		if err != nil {
			s.close()
			return nil, err
		}
		err = s.reg.Restore(slots)
		if err != nil {
			s.close()
			return nil, err
		}
	}

	if s.save == "AUTO" {
		s.save = paths.UniqueFilename("overlay", "")
	}

	return s, nil
}

// step advances the session by one frame. Returns false if the session
// should end.
func (s *session) step() bool {
	if s.frames > 0 && s.pcs.Frame() >= s.frames {
		return false
	}

	if s.runner != nil {
		// script errors have already been logged and end the script
		_ = s.runner.Step()
		if s.runner.Quit() {
			return false
		}
	}

	s.pcs.Step()

	return true
}

// finished returns true if there is nothing left for a session without a
// display to do. Without a frame limit the session continues until the script
// has ended and every picture has stopped moving.
func (s *session) finished() bool {
	if s.frames > 0 {
		return s.pcs.Frame() >= s.frames
	}
	if s.runner != nil && !s.runner.Done() {
		return false
	}

	var moving bool
	s.pcs.Each(func(p display.Picture) {
		moving = moving || p.Moving()
	})
	return !moving
}

// end saves the overlay state if requested and closes the session.
func (s *session) end(output io.Writer) error {
	defer s.close()

	if s.save == "" {
		return nil
	}

	err := s.store.Save(s.save, s.reg.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "! overlay state saved as %s\n", s.save)

	return nil
}

func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logger.Log(logger.Allow, "savestate", err.Error())
		}
		s.store = nil
	}
}

// status line for the terminal preview.
func (s *session) status() string {
	return fmt.Sprintf("frame %d | %s | %s | q to quit", s.pcs.Frame(),
		s.reg.Slot(overlay.Screen), s.reg.Slot(overlay.Fade))
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	f := addFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(f, os.Stdout, func(dir string) display.AssetLoader {
		return sdlscreen.IMGLoader{Dir: dir}
	})
	if err != nil {
		return err
	}

	w, h := s.dispPrefs.Viewport()
	scr, err := sdlscreen.NewScreen(version.ApplicationName, w, h, s.dispPrefs.FPS.Get().(int), s.pcs, s.srcs)
	if err != nil {
		s.close()
		return err
	}

	err = scr.Run(s.step)
	scr.Destroy()
	if err != nil {
		s.close()
		return err
	}

	return s.end(os.Stdout)
}

func term(md *modalflag.Modes) error {
	md.NewMode()
	f := addFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log is never echoed while the terminal is in use
	*f.log = false

	s, err := newSession(f, os.Stdout, nil)
	if err != nil {
		return err
	}

	ts, err := tcell.NewScreen()
	if err != nil {
		s.close()
		return err
	}

	w, h := s.dispPrefs.Viewport()
	scr, err := termscreen.NewScreen(ts, w, h, s.pcs, s.srcs)
	if err != nil {
		s.close()
		return err
	}
	scr.SetStatus(s.status)

	err = scr.Run(s.step, s.dispPrefs.FPS.Get().(int))
	scr.Fini()
	if err != nil {
		s.close()
		return err
	}

	return s.end(os.Stdout)
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	f := addFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(f, output, nil)
	if err != nil {
		return err
	}

	for !s.finished() {
		if !s.step() {
			break // for loop
		}
	}

	fmt.Fprintf(output, "frame %d\n", s.pcs.Frame())
	for _, sl := range s.reg.Slots() {
		fmt.Fprintln(output, sl)
	}

	if !*f.log {
		logger.Write(output)
	}

	return s.end(output)
}
