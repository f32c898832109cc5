package scanner

/*
 * reservedKeywords holds the lowercase spelling of every word that can never
 * be a callable or label identifier. When a candidate identifier matches one
 * of these the recognizer declines so the grammar's own keyword token can
 * match at that position instead.
 */
var reservedKeywords = keywordSet(
	// visibility
	"public", "private", "friend", "global",
	// declarations
	"dim", "static", "const", "withevents",
	"type", "enum", "class",
	"sub", "function", "property", "event",
	"declare", "implements",
	// control flow
	"if", "then", "else", "elseif", "end",
	"for", "to", "step", "next", "each", "in",
	"do", "loop", "while", "until", "wend",
	"select", "case",
	"with", "new",
	"exit", "return", "goto", "gosub", "on",
	// assignment and calls
	"set", "let", "call",
	// arrays
	"redim", "preserve", "erase",
	// module level
	"option", "attribute", "version", "begin",
	// literals
	"true", "false", "nothing", "null", "empty",
	// operators
	"and", "or", "not", "xor", "eqv", "imp", "is", "like", "mod",
	// parameters
	"as", "byval", "byref", "optional", "paramarray",
	// error handling and events
	"resume", "error", "raiseevent",
	// file I/O statements
	"open", "close", "input", "line", "print", "write",
	"get", "put", "seek", "lock", "unlock", "width",
	// system statements
	"appactivate", "beep", "chdir", "chdrive",
	"mkdir", "rmdir", "kill", "name", "filecopy",
	"load", "unload", "date", "time", "randomize",
	"lset", "rset", "mid", "stop", "sendkeys",
	"savepicture", "savesetting", "deletesetting",
	"setattr", "reset",
	// comments
	"rem",
)

// preprocessorKeywords are the words that may follow '#' in a conditional
// compilation directive; "#If" is never a file number.
var preprocessorKeywords = keywordSet("if", "elseif", "else", "end", "const")

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsReservedKeyword reports whether word is a reserved keyword. The
// comparison folds ASCII letters only.
func IsReservedKeyword(word string) bool {
	_, ok := reservedKeywords[toLowerASCII(word)]
	return ok
}

// IsPreprocessorKeyword reports whether word names a conditional compilation
// directive (case-insensitive).
func IsPreprocessorKeyword(word string) bool {
	_, ok := preprocessorKeywords[toLowerASCII(word)]
	return ok
}

// ReservedKeywords returns the reserved words in lowercase, unordered.
func ReservedKeywords() []string {
	words := make([]string, 0, len(reservedKeywords))
	for w := range reservedKeywords {
		words = append(words, w)
	}
	return words
}
