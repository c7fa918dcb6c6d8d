package issuer

import "testing"

func TestIdentifyCaseInsensitive(t *testing.T) {
	ident := Default()
	doc := "Certificado emitido por MODERNA TECNOLOGIA ltda em conformidade com os regulamentos."
	id, ok := ident.Identify(doc)
	if !ok || id != "moderna" {
		t.Fatalf("Identify = (%q, %v), want (moderna, true)", id, ok)
	}
}

func TestIdentifyUnknownIssuer(t *testing.T) {
	ident := Default()
	if id, ok := ident.Identify("documento sem assinatura conhecida"); ok {
		t.Fatalf("expected unknown issuer, got %q", id)
	}
}

func TestIdentifyConfigurationOrderTieBreak(t *testing.T) {
	ident := NewIdentifier([]Signature{
		{ID: "first", Literal: "Alpha Certificadora"},
		{ID: "second", Literal: "Beta Certificações"},
	})
	doc := "Emitido por Beta Certificações em parceria com Alpha Certificadora."
	id, ok := ident.Identify(doc)
	if !ok || id != "first" {
		t.Fatalf("tie-break must follow configuration order, got (%q, %v)", id, ok)
	}
}

func TestIdentifyEmptyText(t *testing.T) {
	if id, ok := Default().Identify(""); ok {
		t.Fatalf("empty text must not identify an issuer, got %q", id)
	}
}

func TestDefaultTableAccentedSignature(t *testing.T) {
	doc := "… certificado: tüv rheinland do brasil …"
	id, ok := Default().Identify(doc)
	if !ok || id != "tuv" {
		t.Fatalf("accented signature lookup failed: (%q, %v)", id, ok)
	}
}
