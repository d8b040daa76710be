package generation

//go:generate mockgen -destination=mock/mock_picker.go -package=mockgeneration -source=picker.go

import (
	"math/rand"
	"sync"
	"time"
)

// Picker supplies the randomness behind template selection
type Picker interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// RandomPicker is a Picker backed by math/rand, safe for concurrent use
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker seeds a picker. seed 0 uses the current time.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

func pick(p Picker, options []string) string {
	return options[p.Intn(len(options))]
}

// between returns a value in [lo, lo+span)
func between(p Picker, lo, span int) int {
	return lo + p.Intn(span)
}
