package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noteColumns = []string{"id", "user_id", "title", "body", "created_at", "updated_at"}

func TestNoteCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewNoteRepository(db)
	now := time.Now().UTC()

	q := `(?s)^INSERT\s+INTO\s+notes\s*\(user_id,\s*title,\s*body\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at,\s*updated_at$`
	mock.ExpectQuery(q).
		WithArgs(int64(3), "title", "body").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	n := &domain.Note{UserID: 3, Title: "title", Body: "body"}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, int64(11), n.ID)
}

func TestNoteListByUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewNoteRepository(db)
	now := time.Now().UTC()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*title,\s*body,\s*created_at,\s*updated_at\s+FROM\s+notes\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s+DESC\s+LIMIT\s+\$2\s+OFFSET\s+\$3$`
	mock.ExpectQuery(q).
		WithArgs(int64(3), 10, 20).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(int64(2), int64(3), "b", "bb", now, now).
			AddRow(int64(1), int64(3), "a", "aa", now, now))

	notes, err := repo.ListByUser(context.Background(), 3, 10, 20)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(2), notes[0].ID)
	assert.Equal(t, "aa", notes[1].Body)
}

func TestNoteCountByUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewNoteRepository(db)

	mock.ExpectQuery(`^SELECT\s+COUNT\(\*\)\s+FROM\s+notes\s+WHERE\s+user_id\s*=\s*\$1$`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	n, err := repo.CountByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 25, n)
}

func TestNoteUpdate_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewNoteRepository(db)

	q := `(?s)^UPDATE\s+notes\s+SET\s+title\s*=\s*\$1,\s*body\s*=\s*\$2,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$3\s+RETURNING\s+updated_at$`
	mock.ExpectQuery(q).WithArgs("t", "b", int64(5)).WillReturnError(sql.ErrNoRows)

	err := repo.Update(context.Background(), &domain.Note{ID: 5, Title: "t", Body: "b"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteGetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewNoteRepository(db)
	now := time.Now().UTC()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*title,\s*body,\s*created_at,\s*updated_at\s+FROM\s+notes\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectQuery(q).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(int64(4), int64(3), "t", "b", now, now))

	n, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n.UserID)
}

func TestNoteDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewNoteRepository(db)

	q := `^DELETE\s+FROM\s+notes\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), domain.ErrNotFound)
}
