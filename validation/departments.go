// File: validation/departments.go
package validation

import "sort"

// careersByDepartment lists the academic departments and the careers each
// one offers. Sign-up requires a matching pair.
var careersByDepartment = map[string][]string{
	"Ciencias de la Computación": {
		"Ingeniería de Software",
		"Tecnologías de la Información",
	},
	"Eléctrica, Electrónica y Telecomunicaciones": {
		"Telecomunicaciones",
		"Electrónica y Automatización",
	},
	"Ciencias de Energía y Mecánica": {
		"Mecánica",
		"Mecatrónica",
	},
	"Ciencias de la Vida y de la Agricultura": {
		"Agropecuaria",
		"Biotecnología",
	},
	"Ciencias Económicas Administrativas y de Comercio": {
		"Administración de Empresas",
		"Comercio Exterior",
		"Contabilidad y Auditoría",
		"Mercadotecnia",
		"Turismo",
	},
	"Ciencias de la Tierra y de la Construcción": {
		"Ingeniería Civil",
		"Ingeniería Geoespacial",
	},
	"Ciencias Médicas": {
		"Medicina",
	},
	"Ciencias Humanas y Sociales": {
		"Pedagogía de la Actividad Física y Deporte",
		"Educación Inicial",
	},
	"Seguridad y Defensa": {
		"Relaciones Internacionales",
	},
	"Ciencias Exactas": {
		"Formación Básica (Sin carrera de pregrado)",
	},
}

// Departments returns the department names in alphabetical order.
func Departments() []string {
	names := make([]string, 0, len(careersByDepartment))
	for name := range careersByDepartment {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Careers returns the careers offered by department, or nil if unknown.
func Careers(department string) []string {
	careers, ok := careersByDepartment[department]
	if !ok {
		return nil
	}
	out := make([]string, len(careers))
	copy(out, careers)
	return out
}

// ValidateCareer reports whether career belongs to department.
func ValidateCareer(department, career string) bool {
	for _, c := range careersByDepartment[department] {
		if c == career {
			return true
		}
	}
	return false
}
