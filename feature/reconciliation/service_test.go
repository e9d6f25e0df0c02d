package reconciliation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dispute-reconciler/core/reconcile"
	"dispute-reconciler/feature/fileio"
	"dispute-reconciler/feature/rates"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	disputes []reconcile.Dispute
	err      error
}

func (s stubSource) GetAll(context.Context) ([]reconcile.Dispute, error) {
	return s.disputes, s.err
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, name, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockPublisher) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func internalSet() []reconcile.Dispute {
	return []reconcile.Dispute{
		{DisputeID: "case_001", TransactionID: "txn_001", Amount: decimal.NewFromInt(100), Currency: "USD", Status: "Open", Reason: "Fraud"},
		{DisputeID: "case_002", TransactionID: "txn_005", Amount: decimal.NewFromInt(150), Currency: "USD", Status: "Lost", Reason: "Product Not Received"},
	}
}

// newTestService returns a service and a pointer counting alert calls.
func newTestService(src DisputeSource, pub ReportPublisher) (*Service, *int) {
	calls := 0
	sink := reconcile.AlertSinkFunc(func(context.Context, []reconcile.Discrepancy) error {
		calls++
		return nil
	})
	engine := reconcile.NewEngine(rates.NewProvider(nil, nil), sink, nil, reconcile.Options{Workers: 2})
	return NewService(engine, src, nil, pub, nil), &calls
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const externalCSV = "DisputeId,TransactionId,Amount,Currency,Status,Reason\n" +
	"case_001,txn_001,100.00,USD,Open,Fraud\n" +
	"case_002,txn_005,150.00,USD,Won,Product Not Received\n" +
	"case_003,txn_006,2000.00,USD,Open,Fraud\n"

func TestService_Run(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "external.csv", externalCSV)
	out := filepath.Join(dir, "report.json")

	svc, alerts := newTestService(stubSource{disputes: internalSet()}, nil)
	result, err := svc.Run(context.Background(), in, out)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Summary.TotalExternalRecords)
	assert.Equal(t, 2, result.Summary.TotalInternalRecords)
	assert.Equal(t, 1, result.Summary.MissingInInternal)
	assert.Equal(t, 1, result.Summary.StatusMismatches)
	assert.Equal(t, 2, result.Summary.HighSeverityDiscrepancies)
	assert.Equal(t, 1, *alerts)

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestService_Run_UnsupportedFormatsFailFirst(t *testing.T) {
	dir := t.TempDir()
	svc, _ := newTestService(stubSource{err: errors.New("must not be called")}, nil)

	_, err := svc.Run(context.Background(), filepath.Join(dir, "in.txt"), filepath.Join(dir, "out.json"))
	assert.ErrorIs(t, err, fileio.ErrUnsupportedFormat)

	in := writeFile(t, dir, "in.csv", externalCSV)
	_, err = svc.Run(context.Background(), in, filepath.Join(dir, "out.xml"))
	assert.ErrorIs(t, err, fileio.ErrUnsupportedFormat)
}

func TestService_Run_NoReportOnFailure(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", externalCSV)
	out := filepath.Join(dir, "out.csv")

	svc, _ := newTestService(stubSource{err: errors.New("db down")}, nil)
	_, err := svc.Run(context.Background(), in, out)
	assert.ErrorContains(t, err, "db down")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestService_Run_Cancelled(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", externalCSV)
	out := filepath.Join(dir, "out.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc, _ := newTestService(stubSource{disputes: internalSet()}, nil)
	_, err := svc.Run(ctx, in, out)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestService_Run_Publishes(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", externalCSV)
	out := filepath.Join(dir, "out.csv")

	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(name string) bool {
		return filepath.Ext(name) == ".csv"
	}), mock.Anything, "text/csv").Return("reports/x.csv", nil)

	svc, _ := newTestService(stubSource{disputes: internalSet()}, pub)
	_, err := svc.Run(context.Background(), in, out)
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestService_Run_PublishFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", externalCSV)

	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	svc, _ := newTestService(stubSource{disputes: internalSet()}, pub)
	_, err := svc.Run(context.Background(), in, filepath.Join(dir, "out.json"))
	assert.NoError(t, err)
}

func TestService_Reports(t *testing.T) {
	svc, _ := newTestService(stubSource{}, nil)
	keys, err := svc.Reports(context.Background())
	require.NoError(t, err)
	assert.Nil(t, keys)

	pub := new(mockPublisher)
	pub.On("List", mock.Anything).Return([]string{"reports/a.json"}, nil)
	svc, _ = newTestService(stubSource{}, pub)
	keys, err = svc.Reports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/a.json"}, keys)
}

func TestConfig_EngineOptions(t *testing.T) {
	opts, err := Config{Workers: 3, Tolerance: "0.05"}.EngineOptions()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, "0.05", opts.Tolerance.String())

	opts, err = Config{}.EngineOptions()
	require.NoError(t, err)
	assert.True(t, opts.Tolerance.IsZero())

	_, err = Config{Tolerance: "abc"}.EngineOptions()
	assert.Error(t, err)

	_, err = Config{Tolerance: "-1"}.EngineOptions()
	assert.ErrorContains(t, err, "negative")
}
