package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
)

// sampleSeed devuelve el dataset de muestra del dashboard. Es la única
// fuente de datos del proceso: tres fondos, cuatro compañías, ocho
// movimientos de caja (cierres de trimestre de 2018 y 2019), seis deals en
// pipeline, tres LPs, los KPIs operativos reportados y las asignaciones
// del overview.
func sampleSeed() seed {
	return seed{
		funds: []entity.Fund{
			{
				Name:          "Fund I",
				Commitment:    decimal.NewFromInt(100),
				Called:        decimal.NewFromInt(90),
				Distributions: decimal.NewFromInt(60),
				NAV:           decimal.NewFromInt(40),
				IRR:           decimal.NewFromFloat(12.5),
				MOIC:          decimal.NewFromFloat(1.1),
				DPI:           decimal.NewFromFloat(0.6),
				RVPI:          decimal.NewFromFloat(0.44),
				TVPI:          decimal.NewFromFloat(1.04),
			},
			{
				Name:          "Fund II",
				Commitment:    decimal.NewFromInt(200),
				Called:        decimal.NewFromInt(180),
				Distributions: decimal.NewFromInt(150),
				NAV:           decimal.NewFromInt(60),
				IRR:           decimal.NewFromFloat(14.8),
				MOIC:          decimal.NewFromFloat(1.3),
				DPI:           decimal.NewFromFloat(0.75),
				RVPI:          decimal.NewFromFloat(0.33),
				TVPI:          decimal.NewFromFloat(1.08),
			},
			{
				Name:          "Fund III",
				Commitment:    decimal.NewFromInt(300),
				Called:        decimal.NewFromInt(250),
				Distributions: decimal.NewFromInt(200),
				NAV:           decimal.NewFromInt(100),
				IRR:           decimal.NewFromFloat(17.3),
				MOIC:          decimal.NewFromFloat(1.5),
				DPI:           decimal.NewFromFloat(0.8),
				RVPI:          decimal.NewFromFloat(0.4),
				TVPI:          decimal.NewFromFloat(1.2),
			},
		},

		companies: []rawCompany{
			{name: "Alpha", fund: "Fund I", invested: "2018", exited: "2022",
				cost: decimal.NewFromInt(10), value: decimal.NewFromInt(25), moic: decimal.NewFromFloat(2.5)},
			{name: "Beta", fund: "Fund II", invested: "2019", exited: "",
				cost: decimal.NewFromInt(15), value: decimal.NewFromInt(20), moic: decimal.NewFromFloat(1.33)},
			{name: "Gamma", fund: "Fund II", invested: "2020", exited: "",
				cost: decimal.NewFromInt(12), value: decimal.NewFromInt(13), moic: decimal.NewFromFloat(1.08)},
			{name: "Delta", fund: "Fund III", invested: "2021", exited: "",
				cost: decimal.NewFromInt(20), value: decimal.NewFromInt(30), moic: decimal.NewFromFloat(1.5)},
		},

		// Cierres de trimestre desde 2018-03-31. El orden de carga ya es
		// cronológico; las vistas que dependen del orden re-ordenan igual.
		cashflows: []rawCashflow{
			{date: "2018-03-31", typ: entity.CashflowInvestment, amount: decimal.NewFromInt(-10), fund: "Fund I"},
			{date: "2018-06-30", typ: entity.CashflowInvestment, amount: decimal.NewFromInt(-15), fund: "Fund I"},
			{date: "2018-09-30", typ: entity.CashflowFollowOn, amount: decimal.NewFromInt(-5), fund: "Fund I"},
			{date: "2018-12-31", typ: entity.CashflowExit, amount: decimal.NewFromInt(30), fund: "Fund I"},
			{date: "2019-03-31", typ: entity.CashflowDividend, amount: decimal.NewFromInt(2), fund: "Fund I"},
			{date: "2019-06-30", typ: entity.CashflowInvestment, amount: decimal.NewFromInt(-20), fund: "Fund II"},
			{date: "2019-09-30", typ: entity.CashflowExit, amount: decimal.NewFromInt(40), fund: "Fund II"},
			{date: "2019-12-31", typ: entity.CashflowDividend, amount: decimal.NewFromInt(5), fund: "Fund II"},
		},

		deals: []entity.PipelineDeal{
			{Name: "Startup A", Stage: entity.StageScreening, LeadPartner: "Aditya"},
			{Name: "Startup B", Stage: entity.StageDueDiligence, LeadPartner: "Siddharth"},
			{Name: "Startup C", Stage: entity.StageIC, LeadPartner: "Adrian"},
			{Name: "Startup D", Stage: entity.StageClosed, LeadPartner: "Aditya"},
			{Name: "Startup E", Stage: entity.StageIC, LeadPartner: "Adrian"},
			{Name: "Startup F", Stage: entity.StageClosed, LeadPartner: "Aditya"},
		},

		investors: []entity.LimitedPartner{
			{Name: "Sovereign Fund A", Commitment: decimal.NewFromInt(50),
				Type: entity.InvestorSovereign, Email: "lpA@example.com", Phone: "+62 812-3456"},
			{Name: "Family Office B", Commitment: decimal.NewFromInt(10),
				Type: entity.InvestorFamilyOffice, Email: "lpB@example.com", Phone: "+65 9123-4567"},
			{Name: "Institutional C", Commitment: decimal.NewFromInt(30),
				Type: entity.InvestorInstitution, Email: "lpC@example.com", Phone: "+1 415-234-5678"},
		},

		kpis: []entity.CompanyKPI{
			{CompanyName: "eFishery", MonthlyRevenue: decimal.NewFromInt(200),
				UserGrowth: decimal.NewFromInt(12), EBITDAMargin: decimal.NewFromInt(-10)},
			{CompanyName: "KitaBeli", MonthlyRevenue: decimal.NewFromInt(150),
				UserGrowth: decimal.NewFromInt(18), EBITDAMargin: decimal.NewFromInt(-5)},
		},

		sectors: []entity.AllocationSlice{
			{Kind: entity.AllocationSector, Label: "Tech", Weight: decimal.NewFromInt(40)},
			{Kind: entity.AllocationSector, Label: "Healthcare", Weight: decimal.NewFromInt(30)},
			{Kind: entity.AllocationSector, Label: "Energy", Weight: decimal.NewFromInt(30)},
		},

		regions: []entity.AllocationSlice{
			{Kind: entity.AllocationRegion, Label: "North America", Weight: decimal.NewFromInt(50)},
			{Kind: entity.AllocationRegion, Label: "Europe", Weight: decimal.NewFromInt(30)},
			{Kind: entity.AllocationRegion, Label: "Asia", Weight: decimal.NewFromInt(20)},
		},
	}
}
