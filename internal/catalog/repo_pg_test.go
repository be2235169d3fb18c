package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"advisor-backend/advisor/model"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	entry := Entry{
		ID:       "entry-1",
		Category: " Invoicing ",
		Option: model.CandidateOption{
			Kind: model.KindBuy,
			Name: "InvoiceBot",
			Cost: model.CostStructure{Recurring: 12, Cadence: model.CadenceMonthly},
		},
		Source:    "q3-sheet.pdf",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO catalog_entries").
		WithArgs(
			entry.ID,
			"invoicing",
			"buy",
			"InvoiceBot",
			entry.Source,
			sqlmock.AnyArg(), // option_payload
			entry.CreatedAt,
			sqlmock.AnyArg(), // updated_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), entry); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	option := model.CandidateOption{Kind: model.KindConnect, Name: "Zapier sync"}
	payload, err := json.Marshal(option)
	if err != nil {
		t.Fatalf("marshal option: %v", err)
	}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "category", "source", "option_payload", "created_at", "updated_at"}).
		AddRow("entry-1", "invoicing", "manual", payload, now, now)
	mock.ExpectQuery("SELECT id, category, source, option_payload, created_at, updated_at").
		WithArgs("entry-1").
		WillReturnRows(rows)

	entry, err := repo.GetByID(context.Background(), "entry-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if entry.Option.Kind != model.KindConnect || entry.Option.Name != "Zapier sync" {
		t.Fatalf("decoded option = %+v", entry.Option)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, category, source, option_payload, created_at, updated_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "source", "option_payload", "created_at", "updated_at"}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	payload, err := json.Marshal(model.CandidateOption{Kind: model.KindBuy, Name: "InvoiceBot"})
	if err != nil {
		t.Fatalf("marshal option: %v", err)
	}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "category", "source", "option_payload", "created_at", "updated_at"}).
		AddRow("entry-1", "invoicing", "manual", payload, now, now)
	mock.ExpectQuery("SELECT id, category, source, option_payload, created_at, updated_at").
		WithArgs("invoicing").
		WillReturnRows(rows)

	entries, err := repo.ListByCategory(context.Background(), " Invoicing ")
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(entries) != 1 || entries[0].Option.Name != "InvoiceBot" {
		t.Fatalf("entries = %+v", entries)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
