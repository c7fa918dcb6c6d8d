package standards

// decreeMarkers are the reference tokens used by every Custom-strategy
// issuer in the built-in table: regulatory decrees ("ato") and resolutions,
// singular and plural.
var decreeMarkers = []string{"ATO", "RESOLUÇÃO", "RESOLUÇÕES"}

// DefaultRules returns the built-in extraction grammar per certifying body.
// Boundary patterns are anchored on the fixed phrasing each body uses around
// its standards section.
func DefaultRules() []Rule {
	return []Rule{
		{
			Issuer:   "moderna",
			Start:    `acima\s+discriminado\(s\)\s+está\(ão\)\s+em\s+conformidade\s+com\s+os\s+documentos\s+normativos\s+indicados\.`,
			End:      `Diretor\s+de\s+Tecnologia`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "ncc",
			Start:    `Regulation\s+Applicable`,
			End:      `Conforme\s+os\s+termos\s+do\s+Ato\s+de\s+Designação\s+nº\s+16\.955`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "brics",
			Start:    `Standards?\s+Applied`,
			End:      `BRICS\s+Certificações`,
			Strategy: Generic,
		},
		{
			Issuer:   "abcp",
			Start:    `Normas?\s+Verificadas?`,
			End:      `ABCP\s+Certificadora`,
			Strategy: Generic,
		},
		{
			Issuer:   "acert",
			Start:    `Standards?\s+(?:Applied|Verified)`,
			End:      `ACERT\s+ORGANISMO`,
			Strategy: Generic,
		},
		{
			Issuer:   "sgs",
			Start:    `Technical\s+Standards?`,
			End:      `SGS\s+do\s+Brasil`,
			Strategy: Generic,
		},
		{
			Issuer:   "bracert",
			Start:    `Normas?\s+Aplicadas?`,
			End:      `BraCert.*BRASIL\s+CERTIFICAÇÕES`,
			Strategy: Generic,
		},
		{
			Issuer:   "ccpe",
			Start:    `Technical\s+Standards?`,
			End:      `CCPE.*CENTRO\s+DE\s+CERTIFICAÇÃO`,
			Strategy: Generic,
		},
		{
			Issuer:   "eldorado",
			Start:    `NORMAS\s+APLICÁVEIS/\s+APPLICABLE\s+STANDARDS`,
			End:      `O\s+OCD-Eldorado\s+atribui\s+a\s+certificação\s+aos\s+produtos\s+mencionados\s+acima`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "icc",
			Start:    `Regulation\s+Applicable`,
			End:      `O\s+organismo\s+ICC\s+no\s+uso\s+das\s+atribuições\s+que\s+lhe\s+confere\s+o\s+Ato\s+de\s+Designação`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "master",
			Start:    `Reference\s+Standards`,
			End:      `LABORATÓRIOS\s+DE\s+ENSAIOS`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "ocp-teli",
			Start:    `Regulamentos\s+Aplicáveis:`,
			End:      `OCD\s+designado\s+pelo\s+Ato\s+nº\s+19\.434`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "tuv",
			Start:    `Standards?\s+Applied`,
			End:      `TÜV`,
			Strategy: Generic,
		},
		{
			Issuer:   "ul",
			Start:    `normative\s+documents`,
			End:      `e\s+atesta\s+que\s+o\s+produto\s+para\s+telecomunicações\s+está\s+em\s+conformidade`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "qc",
			Start:    `Certification\s+program\s*or\s+regulation`,
			End:      `Emissão`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "versys",
			Start:    `Applicable\s+Standards:`,
			End:      `Data\s+Certificação`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "cpqd",
			Start:    `Documentos\s+normativos/\s+Technical\s+Standards:`,
			End:      `Relatório\s+de\s+Conformidade\s+/\s+Report\s+Number:`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
		{
			Issuer:   "lmp",
			Start:    `Certificamos\s+que\s+o\s+produto\s+está\s+em\s+conformidade\s+com\s+as\s+seguintes\s+referências:`,
			End:      `Organismo\s+de\s+Certificação\s+Designado\s+pela\s+ANATEL`,
			Strategy: Custom,
			Markers:  decreeMarkers,
		},
	}
}
