// Package export turns a wiki tree into a single Markdown document.
//
// An export runs in two passes. The first writes the front matter and the
// linearized wiki pages to <target>/<name>.md. Once the document is closed,
// the second pass reads it back, copies every referenced attachment into
// <target>/<name>-attachments/ and rewrites the links to point there:
//
//	exporter := export.New(wikifs.NewOS(), logger, nil)
//	result, err := exporter.Export(ctx, opts)
//
// # Document Format
//
// The document starts with a YAML front matter block suitable for pandoc:
//
//	---
//	title: Sample Requirements
//	author: Jane Doe
//	date: 19 October 2026
//	toc: yes
//	---
//
// The toc line is only written when a table of contents is requested.
//
// # Errors
//
// Export returns a *ValidationError before anything is written when the
// options are unusable, and a *StructureError after the first pass when the
// wiki has missing .order or page files. A StructureError lists every
// problem of the run. Missing attachments are not errors; they are logged and
// returned in Result.Warnings.
package export
