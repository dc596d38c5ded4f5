// Package output renders command results for people and for scripts.
//
// A Printer writes either styled text or JSON, chosen by the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.KeyValue("Document", result.Document)
//	printer.List("Warnings", result.Warnings)
//
// In JSON mode every command writes a single JSON value, and errors are
// written as {"error": "...", "code": N}.
//
// Styles come from lipgloss and are plain when the output is not a terminal
// or when --color=never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: export written
//	output.ExitUserError   // 1: invalid options or a broken wiki
//	output.ExitSystemError // 2: I/O or other failures
//
// Commands return an *ExitError; main turns it into the process exit code
// with GetExitCode.
package output
