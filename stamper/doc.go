// Package stamper reads Bazel workspace status files and substitutes
// single-brace {VAR} placeholders in cgen substitution values. LoadStamps
// parses one or more status files into a variable map; StampValues combines
// loading and substitution over an ordered list of key/value pairs.
package stamper
