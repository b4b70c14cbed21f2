// Package templating specializes generic C templates into a header and a
// source file. Template lines are routed by marker lines into a header-only,
// source-only or shared section; each routed line has every configured key
// replaced by its value, and lines of the shared section that look like the
// first line of a function definition also yield a prototype in the header.
//
// The Engine type drives one specialization run via Run, or verifies existing
// outputs via Check. Specialize, ReplaceAll and ExtractDeclaration expose the
// individual steps on plain strings and streams.
package templating
