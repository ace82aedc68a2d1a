// Package prompt holds the fixed Lectura Fácil instructions sent to the
// generation provider and the output budget for each operation.
package prompt

import "fmt"

// Output-token budgets. The image answer carries two texts, the term
// answer is a short explanation.
const (
	TextMaxTokens  = 1000
	ImageMaxTokens = 1500
	TermMaxTokens  = 500
)

const textTemplate = `Eres un asistente especializado en hacer textos accesibles para todas las personas.

Tu tarea es convertir el siguiente texto en formato de "Lectura Fácil" siguiendo estas reglas:
1. Usa frases cortas y simples
2. Evita palabras técnicas o complejas
3. Si hay palabras difíciles, explícalas con ejemplos cotidianos
4. Usa un lenguaje claro y directo
5. Organiza la información de forma lógica
6. Si hay términos legales o técnicos, tradúcelos a lenguaje cotidiano
7. Manten el sentido y significado original del texto

El texto a simplificar es:

%s

Por favor, proporciona la versión en Lectura Fácil del texto.`

const imagePrompt = `Analiza esta imagen y extrae todo el texto que encuentres.

Luego, convierte ese texto a formato de "Lectura Fácil" siguiendo estas reglas:
1. Usa frases cortas y simples
2. Evita palabras técnicas o complejas
3. Si hay palabras difíciles, explícalas con ejemplos cotidianos
4. Usa un lenguaje claro y directo
5. Si hay términos legales o técnicos, tradúcelos a lenguaje cotidiano
6. Manten el sentido y significado original

Responde en este formato:
` + ExtractedHeader + `
[el texto que encontraste en la imagen]

` + SimplifiedHeader + `
[el texto simplificado]`

const termTemplate = `Explica el siguiente término de forma simple y clara, como si se lo explicaras a alguien que nunca ha escuchado esta palabra:

Término: %s

Proporciona:
1. Una definición simple y clara
2. Un ejemplo cotidiano que ayude a entenderlo
3. Si es posible, una comparación con algo familiar

Usa un lenguaje accesible para todos.`

// Section labels the image prompt asks the model to answer with.
const (
	ExtractedHeader  = "TEXTO EXTRAÍDO:"
	SimplifiedHeader = "VERSIÓN EN LECTURA FÁCIL:"
)

// Text renders the simplification instructions around text.
func Text(text string) string {
	return fmt.Sprintf(textTemplate, text)
}

// Image returns the extract-then-simplify instructions for an image.
func Image() string {
	return imagePrompt
}

// Term renders the explanation request for term.
func Term(term string) string {
	return fmt.Sprintf(termTemplate, term)
}
