package fitz

// Kind categorizes a raised error. Values are ordered and stable; KindNone
// is reserved for "no error" and must never be thrown.
type Kind int

const (
	KindNone          Kind = 0 // no active error
	KindGeneric       Kind = 1 // unspecified failure
	KindSyntax        Kind = 2 // malformed input
	KindTryLater      Kind = 3 // transient failure, retry may succeed
	KindStackOverflow Kind = 4 // exception stack exhausted
	KindAbort         Kind = 5 // silent unwind, never written to the sink
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindGeneric:
		return "generic"
	case KindSyntax:
		return "syntax"
	case KindTryLater:
		return "trylater"
	case KindStackOverflow:
		return "stackoverflow"
	case KindAbort:
		return "abort"
	}
	return "unknown"
}
