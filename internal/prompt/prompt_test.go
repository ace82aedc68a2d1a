package prompt

import (
	"strings"
	"testing"
)

func TestTextSubstitutesVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain", "El arrendatario deberá abonar la fianza."},
		{"format verbs", "100% de %s y %d"},
		{"multiline", "línea uno\nlínea dos"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text(tt.input)
			want := "El texto a simplificar es:\n\n" + tt.input + "\n\nPor favor"
			if !strings.Contains(got, want) {
				t.Errorf("prompt does not contain input verbatim:\n%s", got)
			}
		})
	}
}

func TestTextHasSevenRules(t *testing.T) {
	got := Text("x")
	for i, rule := range []string{
		"1. Usa frases cortas y simples",
		"2. Evita palabras técnicas o complejas",
		"3. Si hay palabras difíciles, explícalas con ejemplos cotidianos",
		"4. Usa un lenguaje claro y directo",
		"5. Organiza la información de forma lógica",
		"6. Si hay términos legales o técnicos, tradúcelos a lenguaje cotidiano",
		"7. Manten el sentido y significado original del texto",
	} {
		if !strings.Contains(got, rule) {
			t.Errorf("rule %d missing: %q", i+1, rule)
		}
	}
}

func TestImageAsksForBothSections(t *testing.T) {
	got := Image()
	extracted := strings.Index(got, ExtractedHeader)
	simplified := strings.Index(got, SimplifiedHeader)
	if extracted < 0 || simplified < 0 {
		t.Fatalf("missing section headers in:\n%s", got)
	}
	if extracted > simplified {
		t.Error("extracted section must come before the simplified one")
	}
}

func TestTerm(t *testing.T) {
	got := Term("hipoteca")
	if !strings.Contains(got, "Término: hipoteca\n") {
		t.Errorf("term not substituted:\n%s", got)
	}
	for _, item := range []string{"1. Una definición simple", "2. Un ejemplo cotidiano", "3. Si es posible, una comparación"} {
		if !strings.Contains(got, item) {
			t.Errorf("missing %q", item)
		}
	}
}
