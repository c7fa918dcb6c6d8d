// Package issuer resolves which certifying body (OCD) issued a document by
// scanning its text for known literal signatures.
package issuer

import "strings"

// Signature pairs an issuer id with the literal text that identifies its
// certificates. Matching is case-insensitive substring search; configuration
// order is the tie-break when a document carries more than one signature.
type Signature struct {
	ID      string
	Literal string
}

// Identifier holds an ordered signature table. Zero value matches nothing.
type Identifier struct {
	signatures []Signature
}

// NewIdentifier builds an Identifier over the given table. The slice is
// copied; callers may reuse theirs.
func NewIdentifier(signatures []Signature) *Identifier {
	table := make([]Signature, len(signatures))
	copy(table, signatures)
	return &Identifier{signatures: table}
}

// Default returns an Identifier carrying the built-in signature table for
// the certifying bodies designated under the homologation regime.
func Default() *Identifier {
	return NewIdentifier(defaultSignatures)
}

// Identify returns the id of the first issuer whose signature occurs in the
// document text. ok=false means "issuer unknown"; callers fall back to
// generic standards extraction in that case.
func (i *Identifier) Identify(documentText string) (id string, ok bool) {
	text := strings.ToLower(documentText)
	for _, sig := range i.signatures {
		if strings.Contains(text, strings.ToLower(sig.Literal)) {
			return sig.ID, true
		}
	}
	return "", false
}

// defaultSignatures lists the designated certification bodies in resolution
// priority order.
var defaultSignatures = []Signature{
	{ID: "ncc", Literal: "Associação NCC Certificações do Brasil"},
	{ID: "brics", Literal: "BRICS Certificações de Sistemas de Gestões e Produtos"},
	{ID: "abcp", Literal: "ABCP Certificadora de Produtos LTDA"},
	{ID: "acert", Literal: "ACERT ORGANISMO DE CERTIFICACAO DE PRODUTOS EM SISTEMAS"},
	{ID: "sgs", Literal: "SGS do Brasil Ltda."},
	{ID: "bracert", Literal: "BraCert – BRASIL CERTIFICAÇÕES LTDA"},
	{ID: "ccpe", Literal: "CCPE – CENTRO DE CERTIFICAÇÃO"},
	{ID: "eldorado", Literal: "OCD-Eldorado"},
	{ID: "icc", Literal: "organismo ICC no uso das atribuições que lhe confere o Ato de Designação N° 696"},
	{ID: "moderna", Literal: "Moderna Tecnologia LTDA"},
	{ID: "master", Literal: "Master Associação de Avaliação de Conformidade"},
	{ID: "ocp-teli", Literal: "OCP-TELI"},
	{ID: "tuv", Literal: "Certificado: TÜV"},
	{ID: "ul", Literal: "UL do Brasil Ltda, Organismo de Certificação Designado"},
	{ID: "qc", Literal: "QC Certificações"},
	{ID: "versys", Literal: "Associação Versys de Tecnologia"},
	{ID: "cpqd", Literal: "CPQD"},
	{ID: "lmp", Literal: "Associação LMP Certificações"},
}
