package container

import (
	app "xray-bot/internal/application"
	"xray-bot/internal/domain/port"
)

type Container struct {
	UserService     *app.UserService
	AnalysisService *app.AnalysisService
	Assembler       port.DocumentAssembler
}

func New(userRepo port.UserRepository, classifier port.Classifier, remote, fallback port.ReportSource, assembler port.DocumentAssembler) *Container {
	userService := app.NewUserService(userRepo)
	reportService := app.NewReportService(remote, fallback)
	analysisService := app.NewAnalysisService(userService, classifier, reportService)

	return &Container{
		UserService:     userService,
		AnalysisService: analysisService,
		Assembler:       assembler,
	}
}
