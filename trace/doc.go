// Package trace is an optional development aid that counts value and
// array lifecycle events. A Recorder installed as the value package's
// observer tallies creates against releases, so ownership mistakes show
// up as outstanding counts instead of silent leaks:
//
//	rec := trace.NewRecorder()
//	rec.Install()
//	defer func() {
//		rec.Uninstall()
//		rec.Report()
//	}()
//
// Counting adds a mutex acquisition per event; leave the recorder
// uninstalled outside development runs.
package trace
