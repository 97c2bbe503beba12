package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"xray-bot/internal/domain/entity"
)

type stubSource struct {
	text  string
	err   error
	calls int
}

func (s *stubSource) Generate(ctx context.Context, label entity.ClassLabel, confidence float64, patient entity.PatientContext) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestReportService_RemoteSuccess(t *testing.T) {
	remote := &stubSource{text: "remote report"}
	fallback := &stubSource{text: "fallback report"}
	svc := NewReportService(remote, fallback)

	rep, err := svc.Generate(context.Background(), entity.LabelNormal, 0.9, nil)
	require.NoError(t, err)
	require.Equal(t, entity.ReportSourceRemote, rep.Source)
	require.Equal(t, "remote report", rep.Text)
	require.Zero(t, fallback.calls)
}

func TestReportService_RemoteFailureFallsBack(t *testing.T) {
	remote := &stubSource{err: errors.New("api unavailable")}
	fallback := &stubSource{text: "fallback report"}
	svc := NewReportService(remote, fallback)

	rep, err := svc.Generate(context.Background(), entity.LabelCOVID, 0.9, nil)
	require.NoError(t, err)
	require.Equal(t, entity.ReportSourceFallback, rep.Source)
	require.Equal(t, "fallback report", rep.Text)
}

func TestReportService_RemoteEmptyFallsBack(t *testing.T) {
	remote := &stubSource{text: "   "}
	fallback := &stubSource{text: "fallback report"}
	svc := NewReportService(remote, fallback)

	rep, err := svc.Generate(context.Background(), entity.LabelNormal, 0.9, nil)
	require.NoError(t, err)
	require.Equal(t, entity.ReportSourceFallback, rep.Source)
}

func TestReportService_NoRemoteConfigured(t *testing.T) {
	fallback := &stubSource{text: "fallback report"}
	svc := NewReportService(nil, fallback)

	rep, err := svc.Generate(context.Background(), entity.LabelNormal, 0.9, nil)
	require.NoError(t, err)
	require.Equal(t, entity.ReportSourceFallback, rep.Source)
	require.Equal(t, 1, fallback.calls)
}
