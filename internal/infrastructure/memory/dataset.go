// Package memory implementa el Dataset Store del dashboard: las cinco
// colecciones de solo lectura (más los suplementos de KPIs operativos y
// asignaciones) compiladas dentro del binario como literales, parseadas y
// validadas una única vez al arrancar el proceso.
//
// Después de LoadDataset el almacén es inmutable: los repositorios de este
// paquete entregan copias al leer, así que ningún caller puede mutarlo.
// Por eso las lecturas no devuelven error: "no encontrado" o "malformado"
// solo pueden ocurrir durante la carga, y ahí son fatales.
package memory

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gp-dashboard-api/internal/domain"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
)

// Dataset almacén en memoria ya validado. Los campos son privados: el
// acceso es vía los repositorios de este paquete, que copian al leer.
type Dataset struct {
	funds     []entity.Fund
	companies []entity.PortfolioCompany
	cashflows []entity.CashflowEvent
	deals     []entity.PipelineDeal
	investors []entity.LimitedPartner
	kpis      []entity.CompanyKPI
	sectors   []entity.AllocationSlice
	regions   []entity.AllocationSlice
}

// rawCompany fila cruda de la semilla. Los años viajan como strings (igual
// que en el sistema de administración que origina estos datos) y se
// parsean una sola vez durante la carga. exited vacío = posición viva.
type rawCompany struct {
	name     string
	fund     string
	invested string
	exited   string
	cost     decimal.Decimal
	value    decimal.Decimal
	moic     decimal.Decimal
}

// rawCashflow fila cruda de un movimiento de caja; la fecha viaja como
// string ISO (YYYY-MM-DD).
type rawCashflow struct {
	date   string
	typ    entity.CashflowType
	amount decimal.Decimal
	fund   string
}

// seed agrupa las colecciones crudas que se compilan en el binario.
type seed struct {
	funds     []entity.Fund
	companies []rawCompany
	cashflows []rawCashflow
	deals     []entity.PipelineDeal
	investors []entity.LimitedPartner
	kpis      []entity.CompanyKPI
	sectors   []entity.AllocationSlice
	regions   []entity.AllocationSlice
}

// LoadDataset construye el almacén a partir de la semilla de muestra.
//
// Un año o una fecha que no parsea es un error de formato de datos: la
// carga falla (envuelve domain.ErrFormatoDatos) y el proceso no arranca.
// No hay sustitución de valores ni filas descartadas en silencio: el
// centinela de exit-year es una regla de las vistas derivadas, no de la
// ingesta. Las inconsistencias entre campos (salida anterior a la
// inversión, llamado mayor al compromiso) se registran como warnings y el
// dato se conserva tal cual.
func LoadDataset() (*Dataset, error) {
	return load(sampleSeed())
}

func load(s seed) (*Dataset, error) {
	companies, err := parseCompanies(s.companies)
	if err != nil {
		return nil, err
	}
	cashflows, err := parseCashflows(s.cashflows)
	if err != nil {
		return nil, err
	}

	warnFundInconsistencies(s.funds)
	warnCompanyInconsistencies(companies)

	return &Dataset{
		funds:     s.funds,
		companies: companies,
		cashflows: cashflows,
		deals:     s.deals,
		investors: s.investors,
		kpis:      s.kpis,
		sectors:   s.sectors,
		regions:   s.regions,
	}, nil
}

// parseCompanies convierte los años string→int. Este es el único punto del
// proceso donde se parsean: las vistas derivadas ya reciben enteros.
func parseCompanies(rows []rawCompany) ([]entity.PortfolioCompany, error) {
	out := make([]entity.PortfolioCompany, 0, len(rows))
	for _, r := range rows {
		invested, err := strconv.Atoi(r.invested)
		if err != nil {
			return nil, fmt.Errorf("%w: año de inversión %q de la compañía %s",
				domain.ErrFormatoDatos, r.invested, r.name)
		}

		var exited *int
		if r.exited != "" {
			y, err := strconv.Atoi(r.exited)
			if err != nil {
				return nil, fmt.Errorf("%w: año de salida %q de la compañía %s",
					domain.ErrFormatoDatos, r.exited, r.name)
			}
			exited = &y
		}

		out = append(out, entity.PortfolioCompany{
			Name:           r.name,
			FundName:       r.fund,
			InvestmentYear: invested,
			ExitYear:       exited,
			Cost:           r.cost,
			Value:          r.value,
			MOIC:           r.moic,
		})
	}
	return out, nil
}

func parseCashflows(rows []rawCashflow) ([]entity.CashflowEvent, error) {
	out := make([]entity.CashflowEvent, 0, len(rows))
	for _, r := range rows {
		date, err := time.Parse("2006-01-02", r.date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q del movimiento %s de %s",
				domain.ErrFormatoDatos, r.date, r.typ, r.fund)
		}
		out = append(out, entity.CashflowEvent{
			Date:     date,
			Type:     r.typ,
			Amount:   r.amount,
			FundName: r.fund,
		})
	}
	return out, nil
}

// warnFundInconsistencies: llamado > compromiso no se rechaza (decisión
// permisiva), pero queda registrado para el equipo de datos.
func warnFundInconsistencies(funds []entity.Fund) {
	for _, f := range funds {
		if f.Called.GreaterThan(f.Commitment) {
			log.Warn().
				Str("fund", f.Name).
				Str("called", f.Called.String()).
				Str("commitment", f.Commitment.String()).
				Msg("dataset: capital llamado excede el compromiso; el dato se conserva sin corregir")
		}
	}
}

func warnCompanyInconsistencies(companies []entity.PortfolioCompany) {
	for _, c := range companies {
		if c.ExitYear != nil && *c.ExitYear < c.InvestmentYear {
			log.Warn().
				Str("company", c.Name).
				Int("investment_year", c.InvestmentYear).
				Int("exit_year", *c.ExitYear).
				Msg("dataset: año de salida anterior al de inversión; el dato se conserva sin corregir")
		}
	}
}
