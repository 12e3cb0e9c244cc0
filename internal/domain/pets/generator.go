package pets

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

const (
	DefaultImageCount = 14
	DefaultExplore    = 16
	TraitsPerPet      = 3
)

// Generator sortea pets a partir del catálogo. Es seguro para uso concurrente.
type Generator struct {
	catalog    Catalog
	imageCount int

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator: src nil => fuente aleatoria por tiempo.
func NewGenerator(c Catalog, imageCount int, src rand.Source) *Generator {
	if imageCount <= 0 {
		imageCount = DefaultImageCount
	}
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1|1)
	}
	return &Generator{catalog: c, imageCount: imageCount, rnd: rand.New(src)}
}

// MaxExplore es el tope de la galería (un nombre por pet).
func (g *Generator) MaxExplore() int {
	return len(g.catalog.Names)
}

// Explore arma la galería: ids 1..n, nombre/descripción por índice, imagen i%imageCount,
// los primeros fondos en orden (cada uno aparece al menos una vez) y el resto al azar.
func (g *Generator) Explore(n int) []Pet {
	if n <= 0 || n > g.MaxExplore() {
		n = g.MaxExplore()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	bgs := g.catalog.Backgrounds
	out := make([]Pet, 0, n)
	for i := 0; i < n; i++ {
		bg := i
		if i >= len(bgs) {
			bg = g.rnd.IntN(len(bgs))
		}
		out = append(out, Pet{
			ID:          strconv.Itoa(i + 1),
			Name:        g.catalog.Names[i],
			Description: g.catalog.Descriptions[i],
			Image:       g.catalog.Image(i % g.imageCount),
			Background:  bgs[bg],
			Traits:      g.traits(),
			Rarity:      g.catalog.Rarities[g.rnd.IntN(len(g.catalog.Rarities))],
		})
	}
	return out
}

// traits elige TraitsPerPet distintos. Llamar con mu tomado.
func (g *Generator) traits() []string {
	idx := g.rnd.Perm(len(g.catalog.Traits))[:TraitsPerPet]
	out := make([]string, 0, TraitsPerPet)
	for _, i := range idx {
		out = append(out, g.catalog.Traits[i])
	}
	return out
}

// ImagePool son los paths pet_0..pet_{imageCount-1} que se precargan para el hatch.
func (g *Generator) ImagePool() []string {
	pool := make([]string, 0, g.imageCount)
	for i := 0; i < g.imageCount; i++ {
		pool = append(pool, g.catalog.Image(i))
	}
	return pool
}

// RandomHatchPet elige uniforme del pool; pool vacío => primera imagen del catálogo.
func (g *Generator) RandomHatchPet(pool []string) Pet {
	if len(pool) == 0 {
		return Pet{Image: g.catalog.Image(0)}
	}
	g.mu.Lock()
	i := g.rnd.IntN(len(pool))
	g.mu.Unlock()
	return Pet{Image: pool[i]}
}
