package docsource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "cct.txt", "Normas Verificadas\nATO 7280\n")
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != "cct.txt" || !strings.Contains(doc.Text, "ATO 7280") {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "scan.pdf", "%PDF-1.4")
	if _, err := Load(path); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestFromHTMLKeepsLineStructure(t *testing.T) {
	page := `<html><head><title>CCT</title><style>p{}</style></head><body>
		<nav>menu</nav>
		<p>Regulamentos Aplicáveis:</p>
		<table><tr><td>ATO</td><td>7280</td></tr><tr><td>RESOLUÇÃO</td><td>680</td></tr></table>
		<p>OCD designado pelo Ato nº 19.434</p>
		<footer>rodapé</footer>
	</body></html>`
	text := FromHTML([]byte(page))
	if strings.Contains(text, "menu") || strings.Contains(text, "rodapé") {
		t.Fatalf("boilerplate not skipped: %q", text)
	}
	lines := strings.Split(text, "\n")
	var atoLine bool
	for _, l := range lines {
		if strings.HasPrefix(l, "ATO 7280") {
			atoLine = true
		}
	}
	if !atoLine {
		t.Fatalf("expected table row flattened to own line, got %q", text)
	}
	if !strings.Contains(text, "Regulamentos Aplicáveis:") {
		t.Fatalf("paragraph text missing: %q", text)
	}
}

func TestLoadDirSortsAndSkips(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b.txt", "segundo")
	write(t, dir, "a.txt", "primeiro")
	write(t, dir, "scan.pdf", "%PDF-1.4")
	docs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(docs) != 2 || docs[0].Name != "a.txt" || docs[1].Name != "b.txt" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
