// Package main provides the entry point for the Ship Editor application.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"ship-editor/internal/app"
	"ship-editor/internal/version"
	"ship-editor/ui/mainwindow"
	"ship-editor/ui/prefs"
)

const appTitle = "Ship Editor"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("ship-editor")

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// A design name on the command line overrides the remembered one.
	if len(os.Args) > 1 {
		if err := appState.LoadDesign(os.Args[1]); err != nil {
			log.Printf("Failed to load design %q: %v", os.Args[1], err)
		}
	}

	win.ShowAndRun()
}
