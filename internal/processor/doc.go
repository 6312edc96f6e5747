// Package processor contains the main phrase processing logic: it
// runs the phonetic converter over input phrases, prints or saves the
// resulting transcripts, and optionally synthesizes spoken audio of
// the spelling.
package processor
