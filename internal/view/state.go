// Package view modela el ciclo de vida de una lista paginada tal como
// la consume una vista: fase de carga, página actual y descarte de
// respuestas viejas cuando hay requests solapados.
package view

import (
	"context"
	"sync"

	"github.com/dropDatabas3/bookly/internal/api"
)

// Phase es la fase de carga de una vista de lista.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Fetcher produce una página de items para el índice pedido.
type Fetcher[T any] func(ctx context.Context, pageIndex, pageSize int) (api.Page[T], error)

// PageView mantiene el estado de una lista paginada. Cada Begin emite
// un número de generación; un Complete con generación vieja se ignora,
// así la respuesta del último request emitido siempre gana aunque las
// anteriores lleguen después.
type PageView[T any] struct {
	mu     sync.Mutex
	gen    uint64
	closed bool

	phase Phase
	page  api.Page[T]
	err   error
}

// NewPageView crea una vista en fase Idle.
func NewPageView[T any]() *PageView[T] {
	return &PageView[T]{}
}

// Begin marca la vista como Loading y retorna el token de generación
// que Complete debe presentar.
func (v *PageView[T]) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	if !v.closed {
		v.phase = Loading
	}
	return v.gen
}

// Complete aplica el resultado del request con generación gen. Si la
// vista ya cerró, o gen no es la última emitida, el resultado se
// descarta. Un error deja la vista en Failed con página vacía: la
// lista degrada a "sin resultados", nunca rompe la vista.
func (v *PageView[T]) Complete(gen uint64, page api.Page[T], err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen != v.gen {
		return false
	}
	if err != nil {
		v.phase = Failed
		v.page = api.Page[T]{PageIndex: page.PageIndex}
		v.err = err
		return true
	}
	v.phase = Loaded
	v.page = page
	v.err = nil
	return true
}

// Close descarta cualquier resultado pendiente. Idempotente.
func (v *PageView[T]) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

// Snapshot retorna una copia consistente del estado actual.
func (v *PageView[T]) Snapshot() (Phase, api.Page[T], error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase, v.page, v.err
}

// Load ejecuta el fetch completo de una página: Begin, fetch, Complete.
// Es la forma síncrona de usar la vista; Begin/Complete quedan
// expuestos para callers que solapan requests.
func (v *PageView[T]) Load(ctx context.Context, fetch Fetcher[T], pageIndex, pageSize int) (api.Page[T], error) {
	gen := v.Begin()
	page, err := fetch(ctx, pageIndex, pageSize)
	v.Complete(gen, page, err)
	return page, err
}
