package mysql_test

import (
	"errors"
	"regexp"
	"testing"

	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository/mysql"
)

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestBulkUpdateScoresCommits(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewPostRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `post` SET `score`=CASE id WHEN ? THEN ? WHEN ? THEN ? ELSE score END")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.BulkUpdateScores(t.Context(), []domain.ScoreUpdate{
		{ID: 1, Score: 1.5},
		{ID: 2, Score: 0.25},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdateScoresBatches(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewPostRepository(gdb)

	updates := make([]domain.ScoreUpdate, 501)
	for i := range updates {
		updates[i] = domain.ScoreUpdate{ID: int64(i + 1), Score: float64(i)}
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `post` SET `score`=CASE id").WillReturnResult(sqlmock.NewResult(0, 500))
	mock.ExpectExec("UPDATE `post` SET `score`=CASE id").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.BulkUpdateScores(t.Context(), updates))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdateScoresRollsBack(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewPostRepository(gdb)

	updates := make([]domain.ScoreUpdate, 600)
	for i := range updates {
		updates[i] = domain.ScoreUpdate{ID: int64(i + 1)}
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `post` SET `score`=CASE id").WillReturnResult(sqlmock.NewResult(0, 500))
	mock.ExpectExec("UPDATE `post` SET `score`=CASE id").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.BulkUpdateScores(t.Context(), updates)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdateScoresEmptyIsNoop(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewPostRepository(gdb)

	require.NoError(t, repo.BulkUpdateScores(t.Context(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyActivityScores(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewCommunityRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `community` SET `activity_score`=CASE id WHEN ? THEN ? WHEN ? THEN ? ELSE activity_score END")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `community` SET `activity_score`=? WHERE activity_score > 0 AND id NOT IN (?,?)")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	touched, err := repo.ApplyActivityScores(t.Context(), map[int64]int64{1: 3, 2: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(3), touched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyActivityScoresNoActivityResetsAll(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewCommunityRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `community` SET `activity_score`=? WHERE activity_score > 0")).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	touched, err := repo.ApplyActivityScores(t.Context(), map[int64]int64{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), touched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyActivityScoresRollsBack(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewCommunityRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `community` SET `activity_score`=CASE id").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `community` SET `activity_score`=?")).WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	touched, err := repo.ApplyActivityScores(t.Context(), map[int64]int64{9: 1})
	require.Error(t, err)
	assert.Zero(t, touched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipCreateConflict(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewMembershipRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `community` SET `members_count`=members_count + 1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `membership`").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry '7-3' for key 'uniq_membership'"})
	mock.ExpectRollback()

	err := repo.Create(t.Context(), &domain.Membership{UserID: 7, CommunityID: 3})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipCreateUnknownCommunity(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewMembershipRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `community` SET `members_count`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Create(t.Context(), &domain.Membership{UserID: 7, CommunityID: 404})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipDeleteNotMember(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewMembershipRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `membership`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(t.Context(), 7, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberOfSkipsQueryForAnonymous(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewMembershipRepository(gdb)

	res, err := repo.MemberOf(t.Context(), 0, []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryCandidates(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysql.NewPostRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, community_id, score FROM `post` WHERE status = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "community_id", "score"}).
			AddRow(5, 1, 2.5).
			AddRow(3, 2, 1.0))

	got, err := repo.QueryCandidates(t.Context(), domain.PostQuery{
		Status:     domain.PostPublished,
		ExcludeIDs: []int64{9},
		Limit:      100,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Candidate{
		{ID: 5, CommunityID: 1, Score: 2.5},
		{ID: 3, CommunityID: 2, Score: 1.0},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
