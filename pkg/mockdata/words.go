package mockdata

// Category identifies a word list used by the generator.
type Category int

const (
	FirstName Category = iota
	LastName
	Company
	CourseTopic
	CourseLevel
	Evaluation
)

var defaultWords = map[Category][]string{
	FirstName: {
		"Juan", "María", "José", "Ana", "Pedro", "Camila", "Diego", "Valentina",
		"Felipe", "Javiera", "Matías", "Constanza", "Sebastián", "Catalina", "Nicolás",
		"Francisca", "Tomás", "Fernanda", "Cristóbal", "Daniela", "Benjamín", "Paula",
		"Ignacio", "Antonia", "Vicente", "Isidora", "Joaquín", "Sofía", "Rodrigo", "Carolina",
		"Andrés", "Macarena", "Gonzalo", "Bárbara", "Patricio", "Ximena", "Álvaro", "Marcela",
	},
	LastName: {
		"García", "González", "Muñoz", "Rojas", "Díaz", "Pérez", "Soto", "Contreras",
		"Silva", "Martínez", "Sepúlveda", "Morales", "Rodríguez", "López", "Fuentes",
		"Hernández", "Torres", "Araya", "Flores", "Espinoza", "Valenzuela", "Castillo",
		"Tapia", "Reyes", "Gutiérrez", "Castro", "Pizarro", "Álvarez", "Vásquez", "Sánchez",
		"Fernández", "Ramírez", "Carrasco", "Gómez", "Cortés", "Herrera", "Núñez", "Jara",
	},
	Company: {
		"Constructora Andes", "Minera del Norte", "Transportes Bío Bío", "Agrícola Maule",
		"Servicios Australes", "Retail Pacífico", "Salmones Chiloé", "Energía Atacama",
		"Logística Central", "Viña Colchagua", "Clínica Providencia", "Banco Austral",
	},
	CourseTopic: {
		"Excel", "Prevención de Riesgos", "Liderazgo", "Atención al Cliente",
		"Primeros Auxilios", "Gestión de Proyectos", "Inglés Técnico", "Contabilidad",
		"Manejo de Grúa Horquilla", "Seguridad de la Información", "Soldadura", "Python",
	},
	CourseLevel: {"Básico", "Intermedio", "Avanzado"},
	Evaluation:  {"Prueba 1", "Prueba 2", "Trabajo práctico", "Examen final"},
}
