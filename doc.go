// Package helptext builds styled, word-wrapped help text for terminals.
//
// A Builder collects text through chained calls. Dictionaries (Dict, Key,
// Value, EndDict) align their keys and lists (UL, OL, LI, EndList) align
// their labels when they close; wrapped lines continue at the column pushed
// with PushWrapIndent. Rendering measures text by its visible width, so
// ANSI styling never disturbs alignment.
//
// Example:
//
//	b := helptext.New("mytool", helptext.WithWrap(true))
//	b.Title().NL().NL().
//		Usage().NL().Tab().Name().Space().Param("file").NL().NL().
//		Flags().NL().Dict().
//		Tab().Key().Flag("-v", "--verbose").End().Value().Text("Print more").End().NL().
//		Tab().Key().Flag("-o").End().Value().Text("Output file").End().NL().
//		EndDict()
//	fmt.Print(b)
//
// Styles come from a Theme bound to a style.Engine; when the engine reports
// no color support every style passes text through unchanged.
package helptext
