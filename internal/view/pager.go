package view

// Pager traduce entre los índices cero-based del wire y los números de
// página uno-based que se muestran al usuario.
type Pager struct {
	// Index es el índice cero-based que viaja en el query string.
	Index int
	// TotalPages viene del envelope de la última respuesta.
	TotalPages int
}

// Display es el número de página uno-based para mostrar.
func (p Pager) Display() int { return p.Index + 1 }

// HasPrev indica si existe una página anterior.
func (p Pager) HasPrev() bool { return p.Index > 0 }

// HasNext indica si existe una página siguiente.
func (p Pager) HasNext() bool { return p.Index+1 < p.TotalPages }

// Prev retorna el pager de la página anterior, sin pasar de la primera.
func (p Pager) Prev() Pager {
	if p.HasPrev() {
		p.Index--
	}
	return p
}

// Next retorna el pager de la página siguiente, sin pasar de la última.
func (p Pager) Next() Pager {
	if p.HasNext() {
		p.Index++
	}
	return p
}

// Clamp ajusta el índice al rango válido [0, TotalPages-1]. Útil
// después de borrar el último item de la última página.
func (p Pager) Clamp() Pager {
	if p.TotalPages > 0 && p.Index >= p.TotalPages {
		p.Index = p.TotalPages - 1
	}
	if p.Index < 0 {
		p.Index = 0
	}
	return p
}
