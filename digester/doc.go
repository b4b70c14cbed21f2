// Package digester computes SHA256 digests of files and byte slices. The
// templating engine uses it to tell whether generated files on disk still
// match what a specialization request would produce.
package digester
