// Package markers recognizes block markers inside arbitrary lines of text.
//
// Two marker forms exist and both may sit anywhere on a line, which lets
// them live inside the comment syntax of any language:
//
//	BEGIN(Name)                    ref opener
//	BEGIN( Name , source_of_truth ) truth opener
//	END()                          closer
//
// The opener grammar is strict: a line that contains the begin token but
// does not complete the grammar is plain text, not a malformed marker.
package markers
