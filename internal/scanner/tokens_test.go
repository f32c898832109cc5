package scanner

import "testing"

func TestTokenTypeString(t *testing.T) {
	if LineContinuation.String() != "LineContinuation" || LabelIdentifier.String() != "LabelIdentifier" {
		t.Fatal("unexpected names")
	}
	if TokenType(99).String() != "Unknown" || TokenType(-1).String() != "Unknown" {
		t.Fatal("out-of-range types must be Unknown")
	}
	if len(TokenTypes()) != 6 {
		t.Fatalf("got %d token types", len(TokenTypes()))
	}
}

func TestValidSymbols(t *testing.T) {
	v := Request(DateLiteral, FileNumber, TokenType(42))
	if !v.Has(DateLiteral) || !v.Has(FileNumber) || v.Has(GuidLiteral) || v.Has(TokenType(42)) {
		t.Fatalf("unexpected set %v", v)
	}
	if got := v.String(); got != "{DateLiteral,FileNumber}" {
		t.Fatalf("String() = %q", got)
	}

	w := v.With(GuidLiteral).Without(DateLiteral)
	if w.Has(DateLiteral) || !w.Has(GuidLiteral) {
		t.Fatalf("With/Without gave %v", w)
	}
	if !v.Has(DateLiteral) {
		t.Fatal("With/Without must not modify the receiver")
	}

	var none ValidSymbols
	if !none.Empty() || AllSymbols().Empty() {
		t.Fatal("Empty() mismatch")
	}
	for _, typ := range TokenTypes() {
		if !AllSymbols().Has(typ) {
			t.Fatalf("AllSymbols missing %v", typ)
		}
	}
}
