// Package ast defines the parsed form of TAML markup: a Document root holding
// Element and Text nodes, and the closed vocabulary of tags an Element may
// carry.
package ast
