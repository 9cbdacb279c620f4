// Package parser turns TAML markup into an ast.Document.
//
// The grammar is deliberately small: <tag> opens a span, </tag> closes it,
// and everything else is text. Tag names must belong to the ast vocabulary.
// The entities &lt; &gt; and &amp; are decoded in text, and a '<' that does
// not start a well-formed tag is kept as literal text.
//
// Parse reports the first problem it finds as a *ParseError carrying the
// byte offset and the 1-based line and column. ParseSafe wraps Parse into a
// Result value for callers that branch on success instead of handling errors.
package parser
