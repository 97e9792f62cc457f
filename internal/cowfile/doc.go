// Package cowfile parses .cow template files.
//
// A template file declares variables, optional comments, and one heredoc-style
// art block:
//
//	# A comment
//	$eye = "o";
//	$t = "$thoughts ";
//	$the_cow = <<EOC
//	   $t
//	    ($eye$eye)
//	EOC
//
// Parsing is a single forward pass with one state flag (inside or outside the
// art block). Assignment values are decoded: \e becomes the ESC byte and \"
// becomes a literal quote. Lines that are not understood are recorded as
// diagnostics and never abort the parse.
//
// An art block that is never closed is tolerated by default: every line after
// the open marker becomes the art. WithStrict turns that case into a
// *MalformedTemplateError.
package cowfile
