// Package ripgrep builds, runs and interprets ripgrep invocations.
//
// A Search is assembled through chained option methods, each mapping to
// one ripgrep flag from a closed registry. Conflicting options (for
// example IgnoreCase after CaseSensitive) are rejected instead of being
// silently overridden:
//
//	s := ripgrep.New(`he[l]{2}o`, "/tmp/data").WithFilename().LineNumber()
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//	out, err := s.Output()
//
// A Search runs at most once. After Run, its options are frozen and the
// views (Output, Records, Grouped, MatchesJSON) are derived from the one
// captured result. Record views require the JSON option.
package ripgrep
