package importer_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/otec/pkg/importer"
	"github.com/dmitrymomot/otec/pkg/mockdata"
)

func BenchmarkValidate(b *testing.B) {
	ps := mockdata.Participants(1000, 1)
	rows := make([]importer.Row, len(ps))
	for i, p := range ps {
		rows[i] = importer.Row{"rut": p.RUT, "nombre": p.Nombre, "email": p.Email, "telefono": p.Telefono}
	}
	im := importer.New()
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		_ = im.Validate(ctx, rows)
	}
}
