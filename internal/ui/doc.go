// Package ui renders emcodec command output with Lipgloss.
//
// Two components are provided:
//
//   - Header: a boxed banner with a title and an ordered field list, used to
//     show an encoded or decoded datagram
//   - Result: success, failure, or warning boxes
//
// Width follows the terminal (clamped to MinTerminalWidth..MaxContentWidth).
// When stdout is not a terminal, commands print RenderPlain output instead
// so the result can be piped.
//
// Example:
//
//	fmt.Println(ui.NewHeader("Decoded frame", "SetAndGetLanguageResponse", []ui.Field{
//	    {Key: "Action", Value: "get"},
//	    {Key: "Language", Value: "german"},
//	}).Render())
package ui
