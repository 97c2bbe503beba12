package port

import "xray-bot/internal/domain/entity"

// DocumentAssembler интерфейс сборщика итогового документа
type DocumentAssembler interface {
	// Assemble собирает готовый PDF по результатам анализа
	Assemble(record *entity.AnalysisRecord) ([]byte, error)
}
