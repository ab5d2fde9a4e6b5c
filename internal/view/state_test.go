package view

import (
	"context"
	"errors"
	"testing"

	"github.com/dropDatabas3/bookly/internal/api"
)

func page(items ...string) api.Page[string] {
	return api.Page[string]{Content: items, TotalPages: 3, PageIndex: 0}
}

func TestPageViewCicloBasico(t *testing.T) {
	v := NewPageView[string]()
	if phase, _, _ := v.Snapshot(); phase != Idle {
		t.Fatalf("fase inicial = %v", phase)
	}

	gen := v.Begin()
	if phase, _, _ := v.Snapshot(); phase != Loading {
		t.Fatalf("después de Begin = %v", phase)
	}

	if !v.Complete(gen, page("a", "b"), nil) {
		t.Fatal("Complete con gen vigente fue descartado")
	}
	phase, p, err := v.Snapshot()
	if phase != Loaded || err != nil || len(p.Content) != 2 {
		t.Fatalf("Snapshot = %v, %v, %v", phase, p, err)
	}
}

// La respuesta del último request emitido gana aunque la anterior
// llegue después.
func TestPageViewDescartaGeneracionVieja(t *testing.T) {
	v := NewPageView[string]()
	gen1 := v.Begin()
	gen2 := v.Begin()

	if !v.Complete(gen2, page("nuevo"), nil) {
		t.Fatal("gen2 descartado")
	}
	if v.Complete(gen1, page("viejo"), nil) {
		t.Fatal("gen1 aplicado después de gen2")
	}

	_, p, _ := v.Snapshot()
	if len(p.Content) != 1 || p.Content[0] != "nuevo" {
		t.Fatalf("Content = %v, quería el resultado de gen2", p.Content)
	}
}

func TestPageViewErrorDegradaAVacia(t *testing.T) {
	v := NewPageView[string]()
	gen := v.Begin()
	v.Complete(gen, api.Page[string]{PageIndex: 2}, errors.New("boom"))

	phase, p, err := v.Snapshot()
	if phase != Failed || err == nil {
		t.Fatalf("fase = %v, err = %v", phase, err)
	}
	if !p.Empty() {
		t.Errorf("página con error no quedó vacía: %v", p.Content)
	}
	if p.PageIndex != 2 {
		t.Errorf("PageIndex = %d", p.PageIndex)
	}
}

func TestPageViewCerradaDescartaTodo(t *testing.T) {
	v := NewPageView[string]()
	gen := v.Begin()
	v.Close()
	if v.Complete(gen, page("tarde"), nil) {
		t.Fatal("Complete aplicado sobre vista cerrada")
	}
	v.Close() // idempotente
}

func TestPageViewLoad(t *testing.T) {
	v := NewPageView[string]()
	p, err := v.Load(context.Background(), func(ctx context.Context, pageIndex, pageSize int) (api.Page[string], error) {
		if pageIndex != 1 || pageSize != 10 {
			t.Errorf("fetch con pageIndex=%d pageSize=%d", pageIndex, pageSize)
		}
		return api.Page[string]{Content: []string{"x"}, TotalPages: 2, PageIndex: pageIndex}, nil
	}, 1, 10)
	if err != nil || len(p.Content) != 1 {
		t.Fatalf("Load = %v, %v", p, err)
	}
	if phase, _, _ := v.Snapshot(); phase != Loaded {
		t.Errorf("fase = %v", phase)
	}
}

func TestPagerTraduccionUnoBased(t *testing.T) {
	p := Pager{Index: 0, TotalPages: 3}
	if p.Display() != 1 {
		t.Errorf("Display = %d", p.Display())
	}
	if p.HasPrev() {
		t.Error("primera página no tiene prev")
	}
	if !p.HasNext() {
		t.Error("debería tener next")
	}

	p = p.Next().Next()
	if p.Index != 2 || p.Display() != 3 {
		t.Errorf("después de dos Next: Index=%d", p.Index)
	}
	if p.HasNext() {
		t.Error("última página no tiene next")
	}
	// Next en la última no avanza
	if p.Next().Index != 2 {
		t.Error("Next pasó de la última página")
	}
	// Prev en la primera no retrocede
	first := Pager{Index: 0, TotalPages: 3}
	if first.Prev().Index != 0 {
		t.Error("Prev pasó de la primera página")
	}
}

func TestPagerClamp(t *testing.T) {
	p := Pager{Index: 9, TotalPages: 3}.Clamp()
	if p.Index != 2 {
		t.Errorf("Clamp = %d, quería 2", p.Index)
	}
	p = Pager{Index: -5, TotalPages: 3}.Clamp()
	if p.Index != 0 {
		t.Errorf("Clamp negativo = %d", p.Index)
	}
	// sin metadata todavía, solo levanta el piso
	p = Pager{Index: -1}.Clamp()
	if p.Index != 0 {
		t.Errorf("Clamp sin TotalPages = %d", p.Index)
	}
}
