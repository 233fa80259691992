package credits

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreEnsureSeedsGuestRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPGStore(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("guest:abc", startingCredits).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT credits, COALESCE").
		WithArgs("guest:abc").
		WillReturnRows(sqlmock.NewRows([]string{"credits", "subscription_status"}).AddRow(3, ""))

	a, err := store.Get(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.Credits != 3 || a.SubscriptionStatus != "" {
		t.Fatalf("unexpected account: %+v", a)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreDebitDecrementsBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPGStore(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("user-1", startingCredits).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT credits, COALESCE").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"credits", "subscription_status"}).AddRow(3, ""))
	mock.ExpectQuery("UPDATE users SET credits = credits -").
		WithArgs("user-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"credits", "subscription_status"}).AddRow(2, ""))

	a, err := store.Debit(context.Background(), "user-1", 1)
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if a.Credits != 2 {
		t.Fatalf("expected 2 credits, got %d", a.Credits)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreSetSubscriptionStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPGStore(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("user-1", startingCredits).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT credits, COALESCE").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"credits", "subscription_status"}).AddRow(0, ""))
	mock.ExpectQuery("UPDATE users SET subscription_status").
		WithArgs("user-1", StatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"credits", "subscription_status"}).AddRow(0, StatusActive))

	a, err := store.SetSubscriptionStatus(context.Background(), "user-1", StatusActive)
	if err != nil {
		t.Fatalf("SetSubscriptionStatus: %v", err)
	}
	if a.SubscriptionStatus != StatusActive {
		t.Fatalf("expected active, got %q", a.SubscriptionStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
