package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedGroup(t *testing.T, db *gorm.DB, slug string) *model.Group {
	t.Helper()
	g := &model.Group{Title: slug, Slug: slug, Description: "d"}
	require.NoError(t, db.Create(g).Error)
	return g
}

func seedPost(t *testing.T, db *gorm.DB, author *model.User, group *model.Group, text string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{Text: text, AuthorID: author.ID, CreatedAt: at}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestFollowCreateIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "author")
	u := seedUser(t, db, "reader")

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, u.ID, a.ID))
	}
	cnt, err := repo.CountFollowers(ctx, a.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)
}

func TestFollowDeleteMissingEdge(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "author")
	u := seedUser(t, db, "reader")

	require.NoError(t, repo.Delete(ctx, u.ID, a.ID))
	cnt, err := repo.CountFollowers(ctx, a.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, cnt)
}

func TestPostListOrderingAndFilters(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	g := seedGroup(t, db, "golang")

	base := time.Now().Add(-time.Hour)
	old := seedPost(t, db, alice, g, "old", base)
	mid := seedPost(t, db, bob, nil, "mid", base.Add(time.Minute))
	newest := seedPost(t, db, alice, g, "new", base.Add(2*time.Minute))

	all, err := repo.List(ctx, PostFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, newest.ID, all[0].ID)
	require.Equal(t, mid.ID, all[1].ID)
	require.Equal(t, old.ID, all[2].ID)

	grouped, err := repo.List(ctx, PostFilter{GroupID: g.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	for _, p := range grouped {
		require.NotNil(t, p.GroupID)
		require.Equal(t, g.ID, *p.GroupID)
	}

	byAuthor, err := repo.List(ctx, PostFilter{AuthorID: bob.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	require.Equal(t, "mid", byAuthor[0].Text)
}

func TestPostListFollowedBy(t *testing.T) {
	db := setupDB(t)
	postRepo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	reader := seedUser(t, db, "reader")

	seedPost(t, db, alice, nil, "from alice", time.Now())
	seedPost(t, db, bob, nil, "from bob", time.Now())

	// no follows yet: empty, not an error
	posts, err := postRepo.List(ctx, PostFilter{FollowedBy: reader.ID}, 0, 10)
	require.NoError(t, err)
	require.Empty(t, posts)

	require.NoError(t, followRepo.Create(ctx, reader.ID, alice.ID))
	posts, err = postRepo.List(ctx, PostFilter{FollowedBy: reader.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "from alice", posts[0].Text)
}

func TestPostDeleteCascadesComments(t *testing.T) {
	db := setupDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	p := seedPost(t, db, alice, nil, "post", time.Now())
	keep := seedPost(t, db, alice, nil, "keep", time.Now())

	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(ctx, &model.Comment{
			Text: fmt.Sprintf("c%d", i), AuthorID: alice.ID, PostID: p.ID, CreatedAt: time.Now(),
		}))
	}
	require.NoError(t, commentRepo.Create(ctx, &model.Comment{
		Text: "other", AuthorID: alice.ID, PostID: keep.ID, CreatedAt: time.Now(),
	}))

	require.NoError(t, postRepo.Delete(ctx, p.ID))

	cnt, err := commentRepo.CountByPost(ctx, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, cnt)
	cnt, err = commentRepo.CountByPost(ctx, keep.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)
}

func TestCommentListNewestFirst(t *testing.T) {
	db := setupDB(t)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	p := seedPost(t, db, alice, nil, "post", time.Now())

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(ctx, &model.Comment{
			Text: fmt.Sprintf("c%d", i), AuthorID: alice.ID, PostID: p.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	comments, err := commentRepo.ListByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "c2", comments[0].Text)
	require.Equal(t, "c0", comments[2].Text)
}
