package search_test

import (
	"time"

	"github.com/dmitrymomot/otec/pkg/search"
)

type person struct {
	ID     string
	Nombre string
	Email  string
	Estado string
	Curso  int
	Edad   int
	Nota   *float64
	Activo bool
	Fecha  time.Time
}

func (p person) Field(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID, true
	case "nombre":
		return p.Nombre, true
	case "email":
		return p.Email, true
	case "estado":
		return p.Estado, true
	case "curso":
		return p.Curso, true
	case "edad":
		return p.Edad, true
	case "nota":
		return p.Nota, true
	case "activo":
		return p.Activo, true
	case "fecha":
		if p.Fecha.IsZero() {
			return nil, true
		}
		return p.Fecha, true
	}
	return nil, false
}

var getPerson = search.FielderGetter[person]()

func grade(f float64) *float64 { return &f }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func people() []person {
	return []person{
		{ID: "1", Nombre: "Juan Pérez", Email: "juan@otec.cl", Estado: "activo", Curso: 10, Edad: 34, Nota: grade(6.1), Activo: true, Fecha: day(2024, 3, 1)},
		{ID: "2", Nombre: "María García", Email: "maria@otec.cl", Estado: "activo", Curso: 11, Edad: 28, Nota: grade(4.5), Activo: true, Fecha: day(2024, 1, 15)},
		{ID: "3", Nombre: "Pedro González", Email: "pedro@otec.cl", Estado: "inactivo", Curso: 10, Edad: 45, Nota: grade(3.9), Fecha: day(2023, 11, 20)},
		{ID: "4", Nombre: "Ana García", Email: "ana@otec.cl", Estado: "suspendido", Curso: 12, Edad: 28, Activo: true},
		{ID: "5", Nombre: "Luis Soto", Email: "garcia.luis@otec.cl", Estado: "activo", Curso: 11, Edad: 51, Nota: grade(5.0), Activo: true, Fecha: day(2024, 2, 10)},
	}
}

func ids(items []person) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}
