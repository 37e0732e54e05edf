// Package views implementa las reglas puras de la capa de vistas derivadas
// del dashboard: el filtro de fondos del sidebar, el corte por año de
// inversión y el período de tenencia. Son funciones sin estado (servicio de
// dominio): cada llamada recalcula sobre las colecciones que recibe y el
// estado del filtro viaja como argumento, nunca se comparte entre sesiones.
package views

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// SelectFunds devuelve el subconjunto de fondos cuyo nombre está en la
// selección, preservando el orden original de la colección.
//
// Contrato del filtro:
//   - Selección vacía = "sin filtro": se devuelve la colección completa.
//   - Un nombre que no existe en la colección simplemente no hace match
//     (no es un error).
func SelectFunds(funds []entity.Fund, selection []string) []entity.Fund {
	if len(selection) == 0 {
		return funds
	}
	chosen := selectionSet(selection)
	out := make([]entity.Fund, 0, len(funds))
	for _, f := range funds {
		if _, ok := chosen[f.Name]; ok {
			out = append(out, f)
		}
	}
	return out
}

// SelectCompanies retiene las compañías con año de inversión <= cutoffYear
// y, si la selección no está vacía, cuyo fondo está en la selección.
// Los dos predicados son independientes: el resultado es la intersección,
// en el orden original de la colección.
func SelectCompanies(companies []entity.PortfolioCompany, selection []string, cutoffYear int) []entity.PortfolioCompany {
	chosen := selectionSet(selection)
	out := make([]entity.PortfolioCompany, 0, len(companies))
	for _, c := range companies {
		if c.InvestmentYear > cutoffYear {
			continue
		}
		if len(chosen) > 0 {
			if _, ok := chosen[c.FundName]; !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func selectionSet(selection []string) map[string]struct{} {
	set := make(map[string]struct{}, len(selection))
	for _, name := range selection {
		set[name] = struct{}{}
	}
	return set
}
