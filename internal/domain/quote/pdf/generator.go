package pdf

import "github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote"

type Generator interface {
	Generate(v quote.View) ([]byte, error)
}
