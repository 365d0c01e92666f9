// Package survey administers the negotiation-style self-assessment.
//
// The instrument is 25 fixed statements, each rated 0-5. Ratings roll up
// into five categories through a fixed key (Mapping). Two quirks of the key
// are kept as published:
//
//   - statement 14 counts toward both Avoidance and Collaboration
//   - statement 13 counts toward no category
//
// A Runner drives one sitting over any io.Reader/io.Writer pair and returns
// the finalized ScoreBoard.
package survey
