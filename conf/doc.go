// Package conf loads cgen configuration files into a templating.Request.
//
// The plain format is one "key = value" pair per line. The reserved keys
// template-file, header-file and source-file select the three paths; every
// other key becomes a substitution, in file order, duplicates included.
// Files ending in .yaml, .yml or .json hold the same information as a
// structured document with an ordered substitutions list.
package conf
