package entity

// DealStage es la etapa de un deal dentro del pipeline de inversión.
type DealStage string

// Etapas del pipeline, en orden de avance.
const (
	StageScreening    DealStage = "Screening"
	StageDueDiligence DealStage = "Due Diligence"
	StageIC           DealStage = "IC" // comité de inversión
	StageClosed       DealStage = "Closed"
)

// PipelineDeal es una oportunidad de inversión en evaluación.
type PipelineDeal struct {
	Name        string    // nombre del deal ("Startup A", ...)
	Stage       DealStage // etapa actual
	LeadPartner string    // partner responsable del deal
}
