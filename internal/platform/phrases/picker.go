package phrases

import (
	"math/rand/v2"
	"sync"
)

// Picker elige una frase al azar de un pool fijo.
// Es seguro para uso concurrente: un solo Picker se comparte entre requests.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker usa una fuente sin seed fija (contenido cosmético, no criptográfico).
func NewPicker() *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededPicker es reproducible; pensado para tests.
func NewSeededPicker(seed1, seed2 uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Pick devuelve "" si el pool está vacío.
func (p *Picker) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}

	p.mu.Lock()
	i := p.rng.IntN(len(pool))
	p.mu.Unlock()

	return pool[i]
}
