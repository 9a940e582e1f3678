package insight

import "context"

// Generator abstrai o modelo de linguagem. A implementação concreta
// (Gemini) vive na infraestrutura; aqui só importa mandar um prompt e
// receber o texto bruto.
type Generator interface {
	GenerateContent(ctx context.Context, systemInstruction, prompt string) (string, error)
}
