package match

import "strings"

// synonyms maps a canonical accounting term to the labels commonly used
// for the same account in imported spreadsheets. Terms are stored
// already normalized (lowercase, no diacritics) and the table is built
// once at package init, never per call. The dictionary is
// bidirectional: a hit only needs source text and candidate name to
// land on terms of the same entry.
var synonyms = map[string][]string{
	"caja":                    {"efectivo", "caja chica", "dinero en efectivo"},
	"banco":                   {"bancos", "banco cuenta corriente", "cuenta corriente bancaria"},
	"clientes":                {"deudores por ventas", "cuentas por cobrar", "creditos por ventas"},
	"documentos por cobrar":   {"documentos a cobrar", "pagares a cobrar"},
	"proveedores":             {"acreedores por compras", "cuentas por pagar"},
	"mercaderias":             {"bienes de cambio", "inventario", "stock"},
	"rodados":                 {"vehiculos", "automotores"},
	"muebles y utiles":        {"mobiliario", "equipamiento de oficina"},
	"depreciacion":            {"amortizacion", "depreciacion acumulada", "amortizacion acumulada"},
	"iva":                     {"impuesto al valor agregado", "iva debito fiscal", "iva credito fiscal"},
	"sueldos":                 {"sueldos y jornales", "remuneraciones", "salarios"},
	"alquileres":              {"alquileres perdidos", "arrendamientos"},
	"capital":                 {"capital social", "capital suscripto"},
	"ventas":                  {"ingresos por ventas", "facturacion"},
	"costo de ventas":         {"costo de mercaderias vendidas", "cmv"},
	"resultado del ejercicio": {"resultado neto", "ganancia del ejercicio"},
}

// termHit reports whether the text contains, or is contained in, the
// term. Empty strings never hit.
func termHit(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	return strings.Contains(text, term) || strings.Contains(term, text)
}

// synonymHit reports whether source and candidate both land on terms of
// the same dictionary entry.
func synonymHit(source, candidate string) bool {
	for canonical, syns := range synonyms {
		sourceHit := termHit(source, canonical)
		candHit := termHit(candidate, canonical)
		for _, s := range syns {
			sourceHit = sourceHit || termHit(source, s)
			candHit = candHit || termHit(candidate, s)
		}
		if sourceHit && candHit {
			return true
		}
	}
	return false
}
