// Package backoffice defines the records managed by the training back office
// (participantes, cursos, inscripciones, notas) and wires them into the
// search engine: field accessors, free-text search fields, filter specs and
// datasets for the global search box.
package backoffice
