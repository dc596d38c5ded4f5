// Package traverse walks an ordered wiki tree and writes it as one Markdown
// stream.
//
// Traversal follows the .order manifests depth first. Each page gets a
// synthetic heading at its nesting level and its own headings are demoted to
// sit below it:
//
//	t := traverse.New(fsys, &opts, w, logger)
//	err := t.AddDirectory(source, 1) // whole directory, pages start at level 1
//	err := t.AddFile(source, page, 0) // single page, the page is the document
//
// Structural problems (a directory without .order, a listed page without its
// .md file) do not stop the walk. They are collected in the Result so a single
// run reports all of them; the caller decides whether they are fatal. Errors
// returned by AddDirectory and AddFile are I/O failures.
package traverse
