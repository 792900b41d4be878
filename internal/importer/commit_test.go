package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-tracker/constants"
	"invoice-tracker/internal/entity"
)

// memInvoiceStore applies transactional writes only when fn succeeds, so
// tests can assert rollback behavior.
type memInvoiceStore struct {
	invoices []*entity.Invoice
}

func (s *memInvoiceStore) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	return s.invoices, nil
}

func (s *memInvoiceStore) WithTx(ctx context.Context, fn func(tx TxStore) error) error {
	tx := &memTx{invoices: append([]*entity.Invoice{}, s.invoices...)}
	if err := fn(tx); err != nil {
		return err
	}
	s.invoices = tx.invoices
	return nil
}

type memTx struct {
	invoices []*entity.Invoice
}

func (t *memTx) InsertInvoice(ctx context.Context, in *entity.InvoiceInput) (*entity.Invoice, error) {
	inv := inputToInvoice(uuid.New(), in)
	t.invoices = append(t.invoices, inv)
	return inv, nil
}

func (t *memTx) UpdateInvoice(ctx context.Context, id uuid.UUID, in *entity.InvoiceInput) (*entity.Invoice, error) {
	for i, inv := range t.invoices {
		if inv.ID == id {
			updated := inputToInvoice(id, in)
			t.invoices[i] = updated
			return updated, nil
		}
	}
	return nil, errors.New("invoice not found")
}

func inputToInvoice(id uuid.UUID, in *entity.InvoiceInput) *entity.Invoice {
	return &entity.Invoice{
		ID:            id,
		DocType:       in.DocType,
		InvoiceClass:  in.InvoiceClass,
		InvoiceNumber: in.InvoiceNumber,
		IssueDate:     in.IssueDate,
		PartyName:     in.PartyName,
		TaxID:         in.TaxID,
		Subtotal:      in.Subtotal,
		TaxAmount:     in.TaxAmount,
		OtherTaxes:    in.OtherTaxes,
		TotalAmount:   in.TotalAmount,
		PaymentStatus: in.PaymentStatus,
		OwnerID:       in.OwnerID,
		OwnerName:     in.OwnerName,
		ExtractedJSON: in.ExtractedJSON,
		Source:        in.Source,
	}
}

type fakeSnapshotter struct {
	calls  int
	reason constants.BackupReason
	err    error
}

func (f *fakeSnapshotter) CreateSnapshot(ctx context.Context, reason constants.BackupReason) error {
	f.calls++
	f.reason = reason
	return f.err
}

func commitOpts(mode constants.DuplicateMode) CommitOptions {
	return CommitOptions{Owner: "u1", OwnerName: "Tester", DuplicateMode: mode}
}

const commitFile = csvHeader +
	"05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n" +
	"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0002,100.00,21.00,121.00,B\n" +
	",Egreso,Broken Row,30-99999999-7,B-0003,100.00,21.00,121.00,B\n"

// tenRowFile mixes exact restatements, renamed counterparts and unseen
// invoices against the four invoices seeded by tenRowStore.
const tenRowFile = csvHeader +
	"05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n" +
	"05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0002,1020.30,214.26,1234.56,A\n" +
	"05/03/2024,Egreso,ACME Group,30-12345678-9,A-0003,1020.30,214.26,1234.56,A\n" +
	"05/03/2024,Egreso,ACME Holdings,30-12345678-9,A-0004,1020.30,214.26,1234.56,A\n" +
	"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0101,100.00,21.00,121.00,B\n" +
	"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0102,100.00,21.00,121.00,B\n" +
	"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0103,100.00,21.00,121.00,B\n" +
	"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0104,100.00,21.00,121.00,B\n" +
	"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0105,100.00,21.00,121.00,B\n" +
	"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0106,100.00,21.00,121.00,B\n"

func tenRowStore() *memInvoiceStore {
	return &memInvoiceStore{invoices: []*entity.Invoice{
		storedInvoice("A-0001", "30123456789", "1234.56"),
		storedInvoice("A-0002", "30123456789", "1234.56"),
		storedInvoice("A-0003", "30123456789", "1234.56"),
		storedInvoice("A-0004", "30123456789", "1234.56"),
	}}
}

func TestPreviewTenRowBatch(t *testing.T) {
	e := NewPreviewEngine(tenRowStore(), nil)

	res, err := e.Preview(context.Background(), strings.NewReader(tenRowFile), "csv")
	require.NoError(t, err)

	assert.Equal(t, 10, res.Summary.Total)
	assert.Equal(t, 6, res.Summary.New)
	assert.Equal(t, 2, res.Summary.Duplicate)
	assert.Equal(t, 2, res.Summary.Conflict)
	assert.Zero(t, res.Summary.Error)
}

func TestCommitTenRowBatchUpdateMode(t *testing.T) {
	store := tenRowStore()
	e := NewCommitEngine(store, &fakeSnapshotter{}, nil)

	res, err := e.Commit(context.Background(), strings.NewReader(tenRowFile), "csv", commitOpts(constants.DuplicateUpdate))
	require.NoError(t, err)

	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 6, res.Imported)
	assert.Equal(t, 4, res.Updated)
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.Failed)
	assert.Len(t, store.invoices, 10)
}

func TestCommitTenRowBatchSkipMode(t *testing.T) {
	store := tenRowStore()
	e := NewCommitEngine(store, &fakeSnapshotter{}, nil)

	res, err := e.Commit(context.Background(), strings.NewReader(tenRowFile), "csv", commitOpts(constants.DuplicateSkip))
	require.NoError(t, err)

	assert.Equal(t, 6, res.Imported)
	assert.Equal(t, 4, res.Skipped)
	assert.Zero(t, res.Updated)
	assert.Len(t, store.invoices, 10)
}

func TestCommitInsertsNewRows(t *testing.T) {
	store := &memInvoiceStore{}
	e := NewCommitEngine(store, &fakeSnapshotter{}, nil)

	res, err := e.Commit(context.Background(), strings.NewReader(commitFile), "csv", commitOpts(constants.DuplicateSkip))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, res.Total, res.Imported+res.Updated+res.Skipped+res.Failed)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0].Message, "date")
	assert.Len(t, store.invoices, 2)
	assert.Equal(t, constants.SourceImport, store.invoices[0].Source)
	assert.Equal(t, "u1", store.invoices[0].OwnerID)
}

func TestCommitSkipModeIsIdempotent(t *testing.T) {
	store := &memInvoiceStore{}
	e := NewCommitEngine(store, &fakeSnapshotter{}, nil)

	_, err := e.Commit(context.Background(), strings.NewReader(commitFile), "csv", commitOpts(constants.DuplicateSkip))
	require.NoError(t, err)
	first := len(store.invoices)

	res, err := e.Commit(context.Background(), strings.NewReader(commitFile), "csv", commitOpts(constants.DuplicateSkip))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Skipped)
	assert.Zero(t, res.Imported)
	assert.Equal(t, first, len(store.invoices))
}

func TestCommitUpdateModeOverwrites(t *testing.T) {
	existing := storedInvoice("A-0001", "30123456789", "1234.56")
	existing.PartyName = "Old Name SRL"
	store := &memInvoiceStore{invoices: []*entity.Invoice{existing}}
	e := NewCommitEngine(store, &fakeSnapshotter{}, nil)

	// same unique key, renamed counterpart
	file := csvHeader + "05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n"
	res, err := e.Commit(context.Background(), strings.NewReader(file), "csv", commitOpts(constants.DuplicateUpdate))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	require.Len(t, store.invoices, 1)
	assert.Equal(t, existing.ID, store.invoices[0].ID)
	assert.Equal(t, "ACME S.A.", store.invoices[0].PartyName)
}

func TestCommitDuplicateModeInsertsFlaggedCopy(t *testing.T) {
	existing := storedInvoice("A-0001", "30123456789", "1234.56")
	store := &memInvoiceStore{invoices: []*entity.Invoice{existing}}
	e := NewCommitEngine(store, &fakeSnapshotter{}, nil)

	file := csvHeader + "05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n"
	res, err := e.Commit(context.Background(), strings.NewReader(file), "csv", commitOpts(constants.DuplicateDuplicate))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	require.Len(t, store.invoices, 2)
	copyRow := store.invoices[1]
	assert.NotEqual(t, existing.ID, copyRow.ID)
	assert.JSONEq(t, `{"isDuplicate":true}`, string(copyRow.ExtractedJSON))
}

func TestCommitBackupGateFailsClosed(t *testing.T) {
	store := &memInvoiceStore{}
	snap := &fakeSnapshotter{err: errors.New("disk full")}
	e := NewCommitEngine(store, snap, nil)

	opts := commitOpts(constants.DuplicateSkip)
	opts.CreateBackup = true
	_, err := e.Commit(context.Background(), strings.NewReader(commitFile), "csv", opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup")
	assert.Equal(t, 1, snap.calls)
	assert.Empty(t, store.invoices, "a failed backup must leave the store untouched")
}

func TestCommitBackupUsesPreImportReason(t *testing.T) {
	store := &memInvoiceStore{}
	snap := &fakeSnapshotter{}
	e := NewCommitEngine(store, snap, nil)

	opts := commitOpts(constants.DuplicateSkip)
	opts.CreateBackup = true
	_, err := e.Commit(context.Background(), strings.NewReader(commitFile), "csv", opts)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.calls)
	assert.Equal(t, constants.BackupPreImport, snap.reason)
}

func TestCommitRejectsUnknownMode(t *testing.T) {
	e := NewCommitEngine(&memInvoiceStore{}, &fakeSnapshotter{}, nil)
	_, err := e.Commit(context.Background(), strings.NewReader(commitFile), "csv", commitOpts("merge"))
	assert.Error(t, err)
}

func TestCommitRequiresOwner(t *testing.T) {
	e := NewCommitEngine(&memInvoiceStore{}, &fakeSnapshotter{}, nil)
	_, err := e.Commit(context.Background(), strings.NewReader(commitFile), "csv", CommitOptions{})
	assert.Error(t, err)
}

func TestCommitInBatchRepeatFollowsMode(t *testing.T) {
	row := "05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n"
	file := csvHeader + row + row

	store := &memInvoiceStore{}
	e := NewCommitEngine(store, &fakeSnapshotter{}, nil)
	res, err := e.Commit(context.Background(), strings.NewReader(file), "csv", commitOpts(constants.DuplicateSkip))
	require.NoError(t, err)

	// the second occurrence sees the first row's insert through the live index
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, store.invoices, 1)
}
